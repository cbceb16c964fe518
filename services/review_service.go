package services

import (
	"errors"

	"github.com/andyrob2215/AAASmores/entity"
	"github.com/andyrob2215/AAASmores/repository"
)

var ErrBadRating = errors.New("rating must be between 1 and 5")

type ReviewService struct {
	Repo *repository.ReviewRepository
}

func NewReviewService(repo *repository.ReviewRepository) *ReviewService {
	return &ReviewService{Repo: repo}
}

func (s *ReviewService) ListLatest() ([]entity.Review, error) {
	return s.Repo.ListLatest(50)
}

func (s *ReviewService) Create(name string, rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return ErrBadRating
	}
	return s.Repo.Create(&entity.Review{
		CustomerName: name,
		Rating:       rating,
		Comment:      comment,
	})
}

func (s *ReviewService) CreateFeedback(name, feedback string) error {
	return s.Repo.CreateFeedback(&entity.Feedback{Name: name, Feedback: feedback})
}
