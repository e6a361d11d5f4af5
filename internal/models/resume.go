package models

import "time"

// Resume holds the stored resume record for a user. Only the most recent
// resume per user is consulted when driving an interview.
type Resume struct {
	ID             int64     `json:"id"`
	UserID         string    `json:"user_id"`
	Filename       string    `json:"filename"`
	JobDescription string    `json:"job_description"`
	Name           string    `json:"name"`
	Skills         string    `json:"skills"`
	WorkExperience string    `json:"work_experience"`
	Projects       string    `json:"projects"`
	Summary        string    `json:"summary,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ResumeDetails are the sections heuristically extracted from resume text
type ResumeDetails struct {
	Name           string `json:"name"`
	Skills         string `json:"skills"`
	WorkExperience string `json:"work_experience"`
	Projects       string `json:"projects"`
}

// UploadResumeResponse is returned after a successful resume upload
type UploadResumeResponse struct {
	Details ResumeDetails `json:"details"`
	Summary string        `json:"summary,omitempty"`
}
