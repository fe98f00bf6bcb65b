package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Job struct {
	ID bson.ObjectID `bson:"_id,omitempty" json:"id"`

	// UserID is the owning recruiter. Set once at creation, never exposed
	// in responses, never updated.
	UserID bson.ObjectID `bson:"user_id" json:"-"`

	CompanyName        string `bson:"company_name" json:"company_name"`
	CompanyLocation    string `bson:"company_location" json:"company_location"`
	CompanyPhoneNumber string `bson:"company_phone_number" json:"company_phone_number"`

	JobTitle       string `bson:"job_title" json:"job_title"`
	Education      string `bson:"education" json:"education"`
	Country        string `bson:"country,omitempty" json:"country,omitempty"`
	JobType        string `bson:"job_type" json:"job_type"`
	Salary         string `bson:"salary" json:"salary"`
	Vacancies      int    `bson:"vacancies" json:"vacancies"`
	Experiences    string `bson:"experiences" json:"experiences"`
	Skills         string `bson:"skills" json:"skills"`
	JobDescription string `bson:"job_description" json:"job_description"`
	JobLocation    string `bson:"job_location" json:"job_location"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// JobRequest is the payload for both job creation and job edit. Edits
// replace the full posting, so the same schema applies.
type JobRequest struct {
	CompanyName        string `json:"company_name" validate:"required"`
	CompanyLocation    string `json:"company_location" validate:"required"`
	CompanyPhoneNumber string `json:"company_phone_number" validate:"required"`
	JobTitle           string `json:"job_title" validate:"required,oneof='Frontend Developer' 'Backend Developer' 'Full Stack Developer' 'DevOps Engineer' 'QA Engineer' 'UI/UX Designer' 'Data Engineer' 'Product Manager'"`
	Education          string `json:"education" validate:"required,oneof='High School' 'Diploma' 'Bachelors' 'Masters' 'Doctorate'"`
	Country            string `json:"country" validate:"omitempty,oneof='Nepal' 'India' 'USA' 'UK' 'Canada' 'Australia'"`
	JobType            string `json:"job_type" validate:"required,oneof='Full Time' 'Part Time' 'Contract' 'Internship' 'Freelance'"`
	Salary             string `json:"salary" validate:"required,oneof='10k-20k' '20k-40k' '40k-60k' '60k-80k' '80k-100k' '100k+'"`
	Vacancies          int    `json:"vacancies" validate:"omitempty,min=1"`
	Experiences        string `json:"experiences" validate:"required,oneof='Fresher' '1-2 years' '2-5 years' '5-10 years' '10+ years'"`
	Skills             string `json:"skills" validate:"required,oneof='JavaScript' 'TypeScript' 'React' 'Node.js' 'Go' 'Python' 'Java' 'SQL'"`
	JobDescription     string `json:"job_description" validate:"required,max=1000"`
	JobLocation        string `json:"job_location" validate:"required,oneof='Remote' 'Onsite' 'Hybrid'"`
}

// JobSummary is the listing projection. Owner and company contact fields
// are deliberately absent.
type JobSummary struct {
	ID             bson.ObjectID `bson:"_id" json:"id"`
	CompanyName    string        `bson:"company_name" json:"company_name"`
	JobTitle       string        `bson:"job_title" json:"job_title"`
	Education      string        `bson:"education" json:"education"`
	Experiences    string        `bson:"experiences" json:"experiences"`
	Salary         string        `bson:"salary" json:"salary"`
	Skills         string        `bson:"skills" json:"skills"`
	JobDescription string        `bson:"job_description" json:"job_description"`
	JobLocation    string        `bson:"job_location" json:"job_location"`
}

type ListJobsRequest struct {
	Page       int    `json:"page" validate:"omitempty,min=1"`
	Limit      int    `json:"limit" validate:"omitempty,min=1"`
	SearchText string `json:"search_text"`
	JobTitle   string `json:"job_title" validate:"omitempty,oneof='Frontend Developer' 'Backend Developer' 'Full Stack Developer' 'DevOps Engineer' 'QA Engineer' 'UI/UX Designer' 'Data Engineer' 'Product Manager'"`
}

type ListJobsResponse struct {
	Message   string       `json:"message"`
	Jobs      []JobSummary `json:"jobs"`
	PageCount int          `json:"pageCount"`
}
