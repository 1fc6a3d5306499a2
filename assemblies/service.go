// Package assemblies manages assemblies and their imported participants:
// creation, patching, archiving, cascading deletion, registration statistics
// and report data.
package assemblies

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ifmsabrazil/adminpanel/models"
	"github.com/ifmsabrazil/adminpanel/stats"
	"github.com/ifmsabrazil/adminpanel/store"
)

var (
	ErrNotFound             = errors.New("assembly not found")
	ErrNotActive            = errors.New("only active assemblies can be archived")
	ErrConfirmationMismatch = errors.New("confirmation text does not match assembly name")
	ErrInvalidInput         = errors.New("invalid assembly input")
)

type Repository interface {
	ListAssemblies(ctx context.Context) ([]models.Assembly, error)
	ListAssembliesByStatus(ctx context.Context, status string) ([]models.Assembly, error)
	GetAssembly(ctx context.Context, id string) (models.Assembly, error)
	InsertAssembly(ctx context.Context, a models.Assembly) error
	SaveAssembly(ctx context.Context, a models.Assembly) error
	DeleteAssemblyCascade(ctx context.Context, id string) (store.AssemblyDeletion, error)

	ParticipantsByAssembly(ctx context.Context, assemblyID string) ([]models.Participant, error)
	ParticipantsByAssemblyAndType(ctx context.Context, assemblyID, participantType string) ([]models.Participant, error)
	InsertParticipants(ctx context.Context, participants []models.Participant) (int, error)
	RegistrationsByAssembly(ctx context.Context, assemblyID string) ([]models.Registration, error)
	ModalitiesByAssembly(ctx context.Context, assemblyID string) ([]models.Modality, error)
}

// FileStorage removes uploaded files such as payment receipts.
type FileStorage interface {
	Delete(ctx context.Context, ref string) error
}

type Service struct {
	repo   Repository
	files  FileStorage
	logger *slog.Logger
	now    func() time.Time
	newID  func() string

	// newParticipantID must sort in generation order; participant rows of
	// one import share createdAt and are read back ordered by id.
	newParticipantID func() string
}

func NewService(repo Repository, files FileStorage, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		files:  files,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,

		newParticipantID: newTimeOrderedID,
	}
}

// newTimeOrderedID returns a UUIDv7, which google/uuid keeps monotonic within
// the process.
func newTimeOrderedID() string {
	return uuid.Must(uuid.NewV7()).String()
}

func (s *Service) List(ctx context.Context) ([]models.Assembly, error) {
	return s.repo.ListAssemblies(ctx)
}

func (s *Service) ListActive(ctx context.Context) ([]models.Assembly, error) {
	return s.repo.ListAssembliesByStatus(ctx, models.AssemblyStatusActive)
}

// NextUpcoming returns the active assembly with the earliest start date still
// in the future, or nil when there is none.
func (s *Service) NextUpcoming(ctx context.Context) (*models.Assembly, error) {
	active, err := s.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UnixMilli()
	var next *models.Assembly
	for i := range active {
		if active[i].StartDate <= now {
			continue
		}
		if next == nil || active[i].StartDate < next.StartDate {
			next = &active[i]
		}
	}
	return next, nil
}

func (s *Service) Get(ctx context.Context, id string) (models.Assembly, error) {
	assembly, err := s.repo.GetAssembly(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Assembly{}, ErrNotFound
	}
	return assembly, err
}

func validType(t string) bool {
	return t == models.AssemblyTypeAG || t == models.AssemblyTypeAGE
}

// Create stores a new active assembly. Registration is open unless stated
// otherwise and payment is required by default for AG only.
func (s *Service) Create(ctx context.Context, actor string, in models.AssemblyInput) (models.Assembly, error) {
	if strings.TrimSpace(in.Name) == "" {
		return models.Assembly{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !validType(in.Type) {
		return models.Assembly{}, fmt.Errorf("%w: type must be AG or AGE", ErrInvalidInput)
	}

	now := s.now().UnixMilli()
	assembly := models.Assembly{
		ID:                   s.newID(),
		Name:                 strings.TrimSpace(in.Name),
		Type:                 in.Type,
		Location:             in.Location,
		StartDate:            in.StartDate,
		EndDate:              in.EndDate,
		Status:               models.AssemblyStatusActive,
		CreatedAt:            now,
		CreatedBy:            actor,
		LastUpdated:          now,
		LastUpdatedBy:        actor,
		RegistrationOpen:     true,
		RegistrationDeadline: in.RegistrationDeadline,
		MaxParticipants:      in.MaxParticipants,
		Description:          in.Description,
		PaymentRequired:      in.Type == models.AssemblyTypeAG,
	}
	if in.RegistrationOpen != nil {
		assembly.RegistrationOpen = *in.RegistrationOpen
	}
	if in.PaymentRequired != nil {
		assembly.PaymentRequired = *in.PaymentRequired
	}

	if err := s.repo.InsertAssembly(ctx, assembly); err != nil {
		return models.Assembly{}, err
	}
	return assembly, nil
}

func (s *Service) Update(ctx context.Context, actor, id string, patch models.AssemblyPatch) (models.Assembly, error) {
	if patch.Type != nil && !validType(*patch.Type) {
		return models.Assembly{}, fmt.Errorf("%w: type must be AG or AGE", ErrInvalidInput)
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return models.Assembly{}, fmt.Errorf("%w: name cannot be blank", ErrInvalidInput)
	}

	assembly, err := s.Get(ctx, id)
	if err != nil {
		return models.Assembly{}, err
	}

	applyPatch(&assembly, patch)
	s.touch(&assembly, actor)

	if err := s.repo.SaveAssembly(ctx, assembly); err != nil {
		return models.Assembly{}, err
	}
	return assembly, nil
}

func applyPatch(a *models.Assembly, p models.AssemblyPatch) {
	if p.Name != nil {
		a.Name = strings.TrimSpace(*p.Name)
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Location != nil {
		a.Location = *p.Location
	}
	if p.StartDate != nil {
		a.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		a.EndDate = *p.EndDate
	}
	if p.RegistrationOpen != nil {
		a.RegistrationOpen = *p.RegistrationOpen
	}
	if p.RegistrationDeadline != nil {
		a.RegistrationDeadline = p.RegistrationDeadline
	}
	if p.MaxParticipants != nil {
		a.MaxParticipants = p.MaxParticipants
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.PaymentRequired != nil {
		a.PaymentRequired = *p.PaymentRequired
	}
}

func (s *Service) touch(a *models.Assembly, actor string) {
	a.LastUpdated = s.now().UnixMilli()
	a.LastUpdatedBy = actor
}

// Archive closes registration and marks an active assembly archived.
func (s *Service) Archive(ctx context.Context, actor, id string) (models.Assembly, error) {
	assembly, err := s.Get(ctx, id)
	if err != nil {
		return models.Assembly{}, err
	}
	if assembly.Status != models.AssemblyStatusActive {
		return models.Assembly{}, ErrNotActive
	}

	assembly.Status = models.AssemblyStatusArchived
	assembly.RegistrationOpen = false
	s.touch(&assembly, actor)

	if err := s.repo.SaveAssembly(ctx, assembly); err != nil {
		return models.Assembly{}, err
	}
	return assembly, nil
}

// UpdatePaymentRequired recomputes the payment flag from the assembly type.
func (s *Service) UpdatePaymentRequired(ctx context.Context, actor, id string) (models.Assembly, error) {
	assembly, err := s.Get(ctx, id)
	if err != nil {
		return models.Assembly{}, err
	}

	assembly.PaymentRequired = assembly.Type == models.AssemblyTypeAG
	s.touch(&assembly, actor)

	if err := s.repo.SaveAssembly(ctx, assembly); err != nil {
		return models.Assembly{}, err
	}
	return assembly, nil
}

// Delete permanently removes an assembly and everything attached to it. The
// confirmation text must equal the assembly name. Receipt files that cannot be
// removed from storage are logged and skipped.
func (s *Service) Delete(ctx context.Context, actor, id, confirmation string) (models.AssemblyDeletion, error) {
	assembly, err := s.Get(ctx, id)
	if err != nil {
		return models.AssemblyDeletion{}, err
	}
	if confirmation != assembly.Name {
		return models.AssemblyDeletion{}, ErrConfirmationMismatch
	}

	registrations, err := s.repo.RegistrationsByAssembly(ctx, id)
	if err != nil {
		return models.AssemblyDeletion{}, err
	}

	files := 0
	for _, reg := range registrations {
		if reg.ReceiptStorageID == "" {
			continue
		}
		files++
		if err := s.files.Delete(ctx, reg.ReceiptStorageID); err != nil {
			s.logger.WarnContext(ctx, "failed to delete receipt file",
				slog.String("assembly_id", id),
				slog.String("registration_id", reg.ID),
				slog.String("receipt", reg.ReceiptStorageID),
				slog.String("error", err.Error()))
		}
	}

	deleted, err := s.repo.DeleteAssemblyCascade(ctx, id)
	if err != nil {
		return models.AssemblyDeletion{}, err
	}

	s.logger.InfoContext(ctx, "assembly deleted",
		slog.String("assembly_id", id),
		slog.String("deleted_by", actor),
		slog.Int("registrations", deleted.Registrations),
		slog.Int("participants", deleted.Participants))

	return models.AssemblyDeletion{
		DeletedAssembly:      id,
		DeletedRegistrations: deleted.Registrations,
		DeletedModalities:    deleted.Modalities,
		DeletedParticipants:  deleted.Participants,
		DeletedFiles:         files,
		DeletedSessions:      deleted.Sessions,
		Message:              fmt.Sprintf("Assembly %q and all related data have been permanently deleted.", assembly.Name),
	}, nil
}

// ReportData gathers everything an assembly report is rendered from.
func (s *Service) ReportData(ctx context.Context, id string) (models.AssemblyReport, error) {
	report := models.AssemblyReport{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		report.Assembly, err = s.Get(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		report.Participants, err = s.repo.ParticipantsByAssembly(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		report.Registrations, err = s.repo.RegistrationsByAssembly(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		report.Modalities, err = s.repo.ModalitiesByAssembly(gctx, id)
		return err
	})

	if err := g.Wait(); err != nil {
		return models.AssemblyReport{}, err
	}
	return report, nil
}

// Stats computes registration statistics. A missing assembly is not an error;
// its capacity is simply unknown.
func (s *Service) Stats(ctx context.Context, id string) (models.RegistrationStats, error) {
	var (
		assembly      *models.Assembly
		participants  []models.Participant
		registrations []models.Registration
		modalities    []models.Modality
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := s.Get(gctx, id)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		assembly = &a
		return nil
	})
	g.Go(func() (err error) {
		participants, err = s.repo.ParticipantsByAssembly(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		registrations, err = s.repo.RegistrationsByAssembly(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		modalities, err = s.repo.ModalitiesByAssembly(gctx, id)
		return err
	})

	if err := g.Wait(); err != nil {
		return models.RegistrationStats{}, err
	}
	return stats.ComputeRegistrationStats(assembly, participants, registrations, modalities), nil
}

// Participants lists an assembly's participants, optionally of one type.
func (s *Service) Participants(ctx context.Context, assemblyID, participantType string) ([]models.Participant, error) {
	if participantType == "" {
		return s.repo.ParticipantsByAssembly(ctx, assemblyID)
	}
	return s.repo.ParticipantsByAssemblyAndType(ctx, assemblyID, participantType)
}

// BulkInsertParticipants imports participants into an existing assembly and
// returns how many were written. Rows keep their import order when read back.
// Only the type is required; names may be blank.
func (s *Service) BulkInsertParticipants(ctx context.Context, assemblyID string, inputs []models.ParticipantInput) (int, error) {
	if _, err := s.Get(ctx, assemblyID); err != nil {
		return 0, err
	}

	for i, in := range inputs {
		if strings.TrimSpace(in.Type) == "" {
			return 0, fmt.Errorf("%w: participant %d needs a type", ErrInvalidInput, i)
		}
	}

	now := s.now().UnixMilli()
	participants := make([]models.Participant, 0, len(inputs))
	for _, in := range inputs {
		participants = append(participants, models.Participant{
			ID:            s.newParticipantID(),
			AssemblyID:    assemblyID,
			Type:          strings.TrimSpace(in.Type),
			ParticipantID: in.ParticipantID,
			Name:          in.Name,
			Role:          in.Role,
			Status:        in.Status,
			Escola:        in.Escola,
			Regional:      in.Regional,
			Cidade:        in.Cidade,
			UF:            in.UF,
			AgFiliacao:    in.AgFiliacao,
			CreatedAt:     now,
		})
	}

	return s.repo.InsertParticipants(ctx, participants)
}

