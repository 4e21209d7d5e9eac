package models

// Notice is a short message for the user: a heading and one sentence.
type Notice struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}
