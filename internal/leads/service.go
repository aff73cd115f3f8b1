package leads

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"solarcatalog/internal/models"
)

type Repository interface {
	InsertLead(ctx context.Context, lead models.Lead) error
}

// Meta carries request details that are not part of the form.
type Meta struct {
	IP     string
	Source string
}

type Service struct {
	repo     Repository
	validate *validator.Validate
	now      func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: NewValidator(),
		now:      time.Now,
	}
}

// Submit validates req and stores it as a lead. Invalid input is reported as
// ValidationErrors.
func (s *Service) Submit(ctx context.Context, req ContactRequest, meta Meta) (models.Lead, error) {
	req.normalize()
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return models.Lead{}, fromValidator(err)
	}

	lead := models.Lead{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		ProjectType: req.ProjectType,
		ProductID:   req.ProductID,
		Message:     req.Message,
		Source:      meta.Source,
		IP:          meta.IP,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.repo.InsertLead(ctx, lead); err != nil {
		return models.Lead{}, fmt.Errorf("store lead: %w", err)
	}

	log.WithFields(log.Fields{
		"lead":        lead.ID,
		"projectType": lead.ProjectType,
		"source":      lead.Source,
	}).Info("contact lead stored")

	return lead, nil
}
