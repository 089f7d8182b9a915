package service

import (
	"context"
	"strings"

	"filmhub/internal/microservices/http-api/dto"
	"filmhub/internal/microservices/http-api/models"
	"filmhub/internal/microservices/http-api/repository"
)

const (
	MinRating = 0
	MaxRating = 10
)

type ReviewService interface {
	List(ctx context.Context) ([]models.Review, error)
	GetByID(ctx context.Context, id string) (*models.Review, error)
	GetView(ctx context.Context, id string) (*models.ReviewView, error)
	Create(ctx context.Context, in dto.CreateReviewDTO) (*models.Review, error)
	Update(ctx context.Context, id string, in dto.UpdateReviewDTO) (*models.Review, error)
	Delete(ctx context.Context, id string) error
}

type reviewService struct {
	repo     repository.ReviewRepository
	resolver *Resolver
}

func NewReviewService(repo repository.ReviewRepository, resolver *Resolver) ReviewService {
	return &reviewService{
		repo:     repo,
		resolver: resolver,
	}
}

func (s *reviewService) List(ctx context.Context) ([]models.Review, error) {
	return s.repo.List(ctx)
}

func (s *reviewService) GetByID(ctx context.Context, id string) (*models.Review, error) {
	if err := checkID("review", id); err != nil {
		return nil, err
	}
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "review", id)
	}
	return review, nil
}

// GetView loads the review and re-resolves its references against the
// current user and film records.
func (s *reviewService) GetView(ctx context.Context, id string) (*models.ReviewView, error) {
	review, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolver.ResolveReview(ctx, review)
}

// Create checks that both references are present, then resolves the user
// and the film, and only then writes. The resolved records are snapshotted
// into the review. Nothing guards against either record being deleted
// between resolution and the write.
func (s *reviewService) Create(ctx context.Context, in dto.CreateReviewDTO) (*models.Review, error) {
	userRef, filmRef := in.UserRef(), in.FilmRef()
	if userRef == "" {
		return nil, missingReference("user is required")
	}
	if filmRef == "" {
		return nil, missingReference("film is required")
	}
	if err := validateRating(in.Rating); err != nil {
		return nil, err
	}

	user, err := s.resolver.ResolveUser(ctx, userRef)
	if err != nil {
		return nil, err
	}
	film, err := s.resolver.ResolveFilm(ctx, filmRef)
	if err != nil {
		return nil, err
	}

	review := &models.Review{
		Rating:       in.Rating,
		Comment:      strings.TrimSpace(in.Comment),
		UserID:       user.ID,
		FilmID:       film.ID,
		UserSnapshot: models.SnapshotUser(user),
		FilmSnapshot: models.SnapshotFilm(film),
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// Update applies the patch as given. Reference fields are overwritten
// without being resolved and the snapshots are left untouched.
func (s *reviewService) Update(ctx context.Context, id string, in dto.UpdateReviewDTO) (*models.Review, error) {
	review, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.UserID != nil {
		if err := checkID("user", *in.UserID); err != nil {
			return nil, err
		}
	}
	if in.FilmID != nil {
		if err := checkID("film", *in.FilmID); err != nil {
			return nil, err
		}
	}
	in.ApplyTo(review)
	if err := validateRating(review.Rating); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, review); err != nil {
		return nil, lookupErr(err, "review", id)
	}
	return review, nil
}

func (s *reviewService) Delete(ctx context.Context, id string) error {
	if err := checkID("review", id); err != nil {
		return err
	}
	return lookupErr(s.repo.Delete(ctx, id), "review", id)
}

func validateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return validation("rating must be between %d and %d", MinRating, MaxRating)
	}
	return nil
}
