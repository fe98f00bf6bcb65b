package repository

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// JobFilter drives the paginated listing. Page and Limit are assumed
// positive; defaulting happens at the handler. A nil Owner means the
// general listing, a set Owner scopes the match to that recruiter's
// postings.
type JobFilter struct {
	Page       int
	Limit      int
	SearchText string
	JobTitle   string
	Owner      *bson.ObjectID
}

// listingProjection is the fixed allow-list of public fields returned by
// listings. The owner id and company contact fields never appear here.
var listingProjection = bson.D{
	{Key: "company_name", Value: 1},
	{Key: "job_title", Value: 1},
	{Key: "education", Value: 1},
	{Key: "experiences", Value: 1},
	{Key: "salary", Value: 1},
	{Key: "skills", Value: 1},
	{Key: "job_description", Value: 1},
	{Key: "job_location", Value: 1},
}

// BuildListingMatch translates the optional filters into a match document.
// Absent filters contribute nothing to the match.
func BuildListingMatch(f JobFilter) bson.D {
	match := bson.D{}
	if f.Owner != nil {
		match = append(match, bson.E{Key: "user_id", Value: *f.Owner})
	}
	if f.SearchText != "" {
		match = append(match, bson.E{Key: "company_name", Value: bson.D{
			{Key: "$regex", Value: f.SearchText},
			{Key: "$options", Value: "i"},
		}})
	}
	if f.JobTitle != "" {
		match = append(match, bson.E{Key: "job_title", Value: f.JobTitle})
	}
	return match
}

// BuildListingPipeline produces the aggregation for one result page:
// match, newest first, skip (page-1)*limit, cap at limit, project the
// public fields.
func BuildListingPipeline(f JobFilter) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: BuildListingMatch(f)}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		bson.D{{Key: "$skip", Value: (f.Page - 1) * f.Limit}},
		bson.D{{Key: "$limit", Value: f.Limit}},
		bson.D{{Key: "$project", Value: listingProjection}},
	}
}

// PageCount is ceil(total/limit).
func PageCount(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
