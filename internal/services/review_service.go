package services

import (
	"fmt"

	"pasar/internal/models"
	"pasar/internal/repositories"
)

// ReviewService handles business logic related to product reviews.
type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	productRepo repositories.ProductRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repositories.ReviewRepository, productRepo repositories.ProductRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// ListByProduct retrieves all reviews of a product.
func (s *ReviewService) ListByProduct(productID string) ([]models.Review, error) {
	return s.reviewRepo.GetByProduct(productID)
}

// CreateReview posts a review on an existing product.
func (s *ReviewService) CreateReview(userID string, review *models.Review) error {
	if _, err := s.productRepo.GetByID(review.ProductID); err != nil {
		return err
	}
	review.UserID = &userID
	if err := s.reviewRepo.Create(review); err != nil {
		return err
	}
	created, err := s.reviewRepo.GetByID(review.ID)
	if err != nil {
		return err
	}
	*review = *created
	return nil
}

// UpdateReview changes the rating/comment of a review the caller wrote.
func (s *ReviewService) UpdateReview(userID, reviewID string, rating float64, comment string) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		return nil, err
	}
	if review.UserID == nil || *review.UserID != userID {
		return nil, fmt.Errorf("review %s: %w", reviewID, ErrUnauthorized)
	}

	review.Rating = rating
	review.Comment = comment
	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview soft-deletes a review the caller wrote.
func (s *ReviewService) DeleteReview(userID, reviewID string) error {
	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		return err
	}
	if review.UserID == nil || *review.UserID != userID {
		return fmt.Errorf("review %s: %w", reviewID, ErrUnauthorized)
	}
	return s.reviewRepo.Delete(reviewID)
}
