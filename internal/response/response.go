package response

// ErrorBody is the wire shape of every failure response: {"error": "..."}.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody is the wire shape of plain confirmation responses.
type MessageBody struct {
	Message string `json:"message"`
}

func Error(msg string) ErrorBody {
	return ErrorBody{Error: msg}
}

func Message(msg string) MessageBody {
	return MessageBody{Message: msg}
}
