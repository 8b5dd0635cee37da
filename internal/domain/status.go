package domain

type Status string

const (
	StatusSuccess  Status = "success"
	StatusError    Status = "error"
	StatusNoFiles  Status = "no files found in folder"
	StatusReceived Status = "notification received"
)
