package coordinator

import (
	"github.com/automatex/texvers/internal/auditlog"
	"github.com/automatex/texvers/internal/common"
	"github.com/automatex/texvers/internal/models"
	"github.com/rs/zerolog"
)

// CoordinatorBuilder provides a fluent interface for creating a
// Coordinator with its collaborators injected.
type CoordinatorBuilder struct {
	logger    zerolog.Logger
	store     models.VersionStore
	diffGen   models.DiffGenerator
	validator models.StructuralValidator
	audit     *auditlog.AuditLog
	presenter models.DebugPresenter
	viewer    models.DiffViewer
	keepCount int
}

// NewCoordinatorBuilder creates a new builder
func NewCoordinatorBuilder() *CoordinatorBuilder {
	return &CoordinatorBuilder{
		logger:    zerolog.Nop(),
		keepCount: DefaultKeepCount,
	}
}

// WithLogger sets the logger
func (b *CoordinatorBuilder) WithLogger(logger zerolog.Logger) *CoordinatorBuilder {
	b.logger = logger
	return b
}

// WithVersionStore sets the version store (required)
func (b *CoordinatorBuilder) WithVersionStore(store models.VersionStore) *CoordinatorBuilder {
	b.store = store
	return b
}

// WithDiffGenerator sets the diff generator (required)
func (b *CoordinatorBuilder) WithDiffGenerator(diffGen models.DiffGenerator) *CoordinatorBuilder {
	b.diffGen = diffGen
	return b
}

// WithValidator sets the optional structural validator
func (b *CoordinatorBuilder) WithValidator(validator models.StructuralValidator) *CoordinatorBuilder {
	b.validator = validator
	return b
}

// WithAuditLog sets the optional compilation audit log
func (b *CoordinatorBuilder) WithAuditLog(audit *auditlog.AuditLog) *CoordinatorBuilder {
	b.audit = audit
	return b
}

// WithPresenter sets the optional presentation sink
func (b *CoordinatorBuilder) WithPresenter(presenter models.DebugPresenter) *CoordinatorBuilder {
	b.presenter = presenter
	return b
}

// WithDiffViewer sets the optional display sink
func (b *CoordinatorBuilder) WithDiffViewer(viewer models.DiffViewer) *CoordinatorBuilder {
	b.viewer = viewer
	return b
}

// WithKeepCount sets the retention count used after successful stores
func (b *CoordinatorBuilder) WithKeepCount(keepCount int) *CoordinatorBuilder {
	if keepCount > 0 {
		b.keepCount = keepCount
	}
	return b
}

// Build creates the Coordinator instance
func (b *CoordinatorBuilder) Build() (*Coordinator, error) {
	if b.store == nil {
		return nil, common.NewValidationError("version_store", b.store, "version store cannot be nil")
	}
	if b.diffGen == nil {
		return nil, common.NewValidationError("diff_generator", b.diffGen, "diff generator cannot be nil")
	}

	return &Coordinator{
		logger:    b.logger.With().Str("component", "Coordinator").Logger(),
		store:     b.store,
		diffGen:   b.diffGen,
		validator: b.validator,
		audit:     b.audit,
		presenter: b.presenter,
		viewer:    b.viewer,
		keepCount: b.keepCount,
	}, nil
}
