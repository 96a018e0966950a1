package dto

type QueryRequest struct {
	Question  string `json:"question" validate:"required"`
	SessionId string `json:"session_id"`
}

type QueryResponse struct {
	Response  string `json:"response"`
	SessionId string `json:"session_id"`
}
