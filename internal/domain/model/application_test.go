package model

import "testing"

func validSubmitApplicationRequest() SubmitApplicationRequest {
	return SubmitApplicationRequest{
		JobID:          "job-1",
		ApplicantName:  "Bob",
		ApplicantEmail: "bob@example.com",
		Resume:         []byte("resume bytes"),
	}
}

func TestSubmitApplicationRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SubmitApplicationRequest)
		wantErr bool
	}{
		{"valid", func(r *SubmitApplicationRequest) {}, false},
		{"missing job id", func(r *SubmitApplicationRequest) { r.JobID = "" }, true},
		{"missing name", func(r *SubmitApplicationRequest) { r.ApplicantName = " " }, true},
		{"missing email", func(r *SubmitApplicationRequest) { r.ApplicantEmail = "" }, true},
		{"missing resume", func(r *SubmitApplicationRequest) { r.Resume = nil }, true},
		{"odd email accepted", func(r *SubmitApplicationRequest) { r.ApplicantEmail = "not-an-email" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSubmitApplicationRequest()
			tt.mutate(&req)
			if err := req.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
