package models

import "time"

// FormSubmission is the callback request captured from the landing page form
// at submit time. It is never stored. The phone is the only checked field.
type FormSubmission struct {
	ParentName   string `json:"parentName"`
	Phone        string `json:"phone" validate:"required,in_phone"`
	Relationship string `json:"relationship"`
	Language     string `json:"language"`
	CallTime     string `json:"callTime"`
}

// SubmissionResult is what a submitter hands back for an accepted request
type SubmissionResult struct {
	ReferenceID string    `json:"referenceId"`
	Phone       string    `json:"phone"` // number that will be called, as entered
	AcceptedAt  time.Time `json:"acceptedAt"`
}
