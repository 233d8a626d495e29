package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

type StatusTransitionRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reviewed contacted interviewed hired rejected withdrawn"`
}

func (r StatusTransitionRequest) Validate() error {
	return validate.Struct(r)
}

type StatusTransitionResponse struct {
	CandidateID string `json:"candidate_id"`
	JobID       string `json:"job_id"`
	Status      string `json:"status"`
}

type AutoContactResponse struct {
	JobID     string `json:"job_id"`
	Contacted int    `json:"contacted"`
}
