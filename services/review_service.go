package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/solveighty/restaurant-mechita/entity"
	"github.com/solveighty/restaurant-mechita/repository"
)

const maxPageReviews = 2

var (
	ErrReviewLimit   = errors.New("page review limit reached")
	ErrInvalidReview = errors.New("invalid review")
)

type ReviewService struct {
	repo      *repository.ReviewRepository
	userRepo  *repository.UserRepository
	orderRepo *repository.OrderRepository
	users     *UserService
}

func NewReviewService(repo *repository.ReviewRepository, ur *repository.UserRepository, or *repository.OrderRepository, users *UserService) *ReviewService {
	return &ReviewService{repo: repo, userRepo: ur, orderRepo: or, users: users}
}

// Create stores a review. PAGE reviews are capped at two per user;
// ORDER reviews must point at an existing order.
func (s *ReviewService) Create(userID uint, kind string, rating int, comment string, orderID *uint) (*entity.Review, error) {
	if kind != entity.ReviewPage && kind != entity.ReviewOrder {
		return nil, ErrInvalidReview
	}
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidReview
	}
	if _, err := s.userRepo.FindByID(userID); errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	rv := entity.Review{
		UserID:     userID,
		Kind:       kind,
		Rating:     rating,
		Comment:    comment,
		ReviewDate: time.Now(),
	}

	switch kind {
	case entity.ReviewPage:
		n, err := s.repo.CountByUserAndKind(userID, entity.ReviewPage)
		if err != nil {
			return nil, err
		}
		if n >= maxPageReviews {
			return nil, ErrReviewLimit
		}
	case entity.ReviewOrder:
		if orderID == nil {
			return nil, ErrInvalidReview
		}
		if _, err := s.orderRepo.FindByID(s.repo.DB, *orderID); errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		} else if err != nil {
			return nil, err
		}
		rv.OrderID = orderID
	}

	if err := s.repo.Create(&rv); err != nil {
		return nil, err
	}
	return &rv, nil
}

func (s *ReviewService) ListByUser(userID uint) ([]entity.Review, error) {
	return s.repo.ListByUser(userID)
}

func (s *ReviewService) PageReviews() ([]entity.Review, error) {
	return s.repo.ListByKind(entity.ReviewPage)
}

func (s *ReviewService) OrderReviews(requesterID uint) ([]entity.Review, error) {
	if err := s.users.RequireAdmin(requesterID); err != nil {
		return nil, err
	}
	return s.repo.ListByKind(entity.ReviewOrder)
}
