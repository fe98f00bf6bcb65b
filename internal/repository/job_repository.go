package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"jobboard/internal/models"
)

type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id bson.ObjectID) (*models.Job, error)
	Update(ctx context.Context, id bson.ObjectID, req *models.JobRequest) error
	Delete(ctx context.Context, id bson.ObjectID) error
	// List returns one page of summaries plus the total match count for
	// pagination metadata.
	List(ctx context.Context, f JobFilter) ([]models.JobSummary, int64, error)
}

type jobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) JobRepository {
	return &jobRepository{coll: db.Collection("jobs")}
}

func (r *jobRepository) Create(ctx context.Context, job *models.Job) error {
	if job.ID.IsZero() {
		job.ID = bson.NewObjectID()
	}
	now := time.Now().UTC()
	job.CreatedAt = now
	job.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, job)
	return err
}

func (r *jobRepository) GetByID(ctx context.Context, id bson.ObjectID) (*models.Job, error) {
	var j models.Job
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&j)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &j, nil
}

// Update replaces the posting's content fields. The owner id is not part
// of the set document, so it cannot change after creation.
func (r *jobRepository) Update(ctx context.Context, id bson.ObjectID, req *models.JobRequest) error {
	set := bson.D{
		{Key: "company_name", Value: req.CompanyName},
		{Key: "company_location", Value: req.CompanyLocation},
		{Key: "company_phone_number", Value: req.CompanyPhoneNumber},
		{Key: "job_title", Value: req.JobTitle},
		{Key: "education", Value: req.Education},
		{Key: "country", Value: req.Country},
		{Key: "job_type", Value: req.JobType},
		{Key: "salary", Value: req.Salary},
		{Key: "vacancies", Value: req.Vacancies},
		{Key: "experiences", Value: req.Experiences},
		{Key: "skills", Value: req.Skills},
		{Key: "job_description", Value: req.JobDescription},
		{Key: "job_location", Value: req.JobLocation},
		{Key: "updated_at", Value: time.Now().UTC()},
	}
	res, err := r.coll.UpdateByID(ctx, id, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *jobRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *jobRepository) List(ctx context.Context, f JobFilter) ([]models.JobSummary, int64, error) {
	cur, err := r.coll.Aggregate(ctx, BuildListingPipeline(f))
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var jobs []models.JobSummary
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, 0, err
	}

	total, err := r.coll.CountDocuments(ctx, BuildListingMatch(f))
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}
