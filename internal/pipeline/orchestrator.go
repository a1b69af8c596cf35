// Package pipeline provides the orchestrator for course material generation:
// a sequential, resumable, human-in-the-loop state machine that drives each
// material through prompt rendering, generation, validation, optional
// translation, and approval gating.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/course-builder/internal/grounding"
	"github.com/jonathan/course-builder/internal/llm"
	"github.com/jonathan/course-builder/internal/rendering"
	"github.com/jonathan/course-builder/internal/translation"
	"github.com/jonathan/course-builder/internal/types"
	"github.com/jonathan/course-builder/internal/validation"
)

// DefaultGenerationTimeout bounds one model call. The remote call is
// otherwise unbounded; without a ceiling a hung call would pin the material
// in generating status until process restart.
const DefaultGenerationTimeout = 120 * time.Second

// Orchestrator ties the pipeline components together. It holds no per-course
// state: the cumulative context is rebuilt from the store on every
// invocation, so distinct courses can be advanced concurrently.
type Orchestrator struct {
	store    Store
	client   llm.Client
	timeout  time.Duration
	validate *validator.Validate
}

// Options configures an Orchestrator.
type Options struct {
	// GenerationTimeout overrides DefaultGenerationTimeout; zero keeps the
	// default, a negative value disables the ceiling.
	GenerationTimeout time.Duration
}

// New creates an orchestrator over the given store and generation client.
func New(store Store, client llm.Client, opts Options) *Orchestrator {
	timeout := opts.GenerationTimeout
	if timeout == 0 {
		timeout = DefaultGenerationTimeout
	}
	return &Orchestrator{
		store:    store,
		client:   client,
		timeout:  timeout,
		validate: validator.New(),
	}
}

// AdvanceResult reports the outcome of one single-step advance invocation.
type AdvanceResult struct {
	Generated    bool               `json:"generated"`
	Message      string             `json:"message"`
	MaterialID   *uuid.UUID         `json:"material_id,omitempty"`
	MaterialType types.MaterialType `json:"material_type,omitempty"`
}

// CreateCourse validates the request and seeds the course, its eight pending
// materials, and the pipeline row.
func (o *Orchestrator) CreateCourse(ctx context.Context, input *types.CourseInput) (*types.Course, error) {
	if err := o.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid course input: %w", err)
	}
	return o.store.CreateCourse(ctx, input)
}

// Advance performs one single-step advance of the course's pipeline: locate
// the earliest eligible material, generate it, validate it, and either park
// it for approval or record the failure. materialType optionally targets a
// specific material; empty selects the next eligible one.
//
// Advance is idempotent for courses that are fully completed or blocked on
// approval: those invocations change no state and report a no-op outcome.
func (o *Orchestrator) Advance(ctx context.Context, courseID uuid.UUID, materialType string) (*AdvanceResult, error) {
	course, err := o.store.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, &NotFoundError{Resource: "course", ID: courseID.String()}
	}

	materials, err := o.store.ListMaterials(ctx, courseID)
	if err != nil {
		return nil, err
	}
	// At most one material may be in flight per course. State is read, not
	// locked; the claim below closes the remaining race window.
	for _, m := range materials {
		if m.Status == types.MaterialStatusGenerating {
			return nil, &ConflictError{Message: fmt.Sprintf("material %s is already generating", m.MaterialType)}
		}
	}

	material, err := o.selectMaterial(ctx, courseID, materialType)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return &AdvanceResult{Generated: false, Message: "No materials to generate"}, nil
	}

	// Generation is strictly sequential: every earlier step must be approved
	// before this one may start. A completed-but-unreviewed earlier material
	// makes this invocation a no-op rather than an error.
	for _, m := range materials {
		if m.StepOrder < material.StepOrder && m.ApprovalStatus != types.ApprovalApproved {
			if materialType != "" {
				return nil, &ConflictError{Message: fmt.Sprintf("material %s requires approval of all earlier steps", material.MaterialType)}
			}
			return &AdvanceResult{Generated: false, Message: fmt.Sprintf("Waiting for approval of %s", m.MaterialType)}, nil
		}
	}

	claimed, err := o.store.ClaimMaterial(ctx, material.ID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, &ConflictError{Message: fmt.Sprintf("material %s was claimed by a concurrent invocation", material.MaterialType)}
	}

	if err := o.markRunning(ctx, course, material); err != nil {
		return nil, err
	}

	return o.generateStep(ctx, course, material, materials)
}

// selectMaterial resolves which material this invocation targets.
func (o *Orchestrator) selectMaterial(ctx context.Context, courseID uuid.UUID, materialType string) (*types.Material, error) {
	if materialType == "" {
		return o.store.NextEligibleMaterial(ctx, courseID)
	}

	mt, err := types.ParseMaterialType(materialType)
	if err != nil {
		return nil, err
	}
	material, err := o.store.GetMaterialByType(ctx, courseID, mt)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, &NotFoundError{Resource: "material", ID: materialType}
	}
	if !material.Eligible() {
		return nil, &ConflictError{Message: fmt.Sprintf("material %s is not eligible for generation", mt)}
	}
	return material, nil
}

// markRunning records the start of a step on the pipeline and course rows.
func (o *Orchestrator) markRunning(ctx context.Context, course *types.Course, material *types.Material) error {
	p, err := o.store.GetPipeline(ctx, course.ID)
	if err != nil {
		return err
	}
	if p == nil {
		return &NotFoundError{Resource: "pipeline", ID: course.ID.String()}
	}

	p.Status = types.PipelineStatusRunning
	p.CurrentStep = material.StepOrder
	p.CurrentMaterialID = &material.ID
	p.WaitingForApproval = false
	p.ErrorMessage = nil
	if err := o.store.UpdatePipeline(ctx, p); err != nil {
		return err
	}

	return o.store.UpdateCourseStatus(ctx, course.ID, types.CourseStatusGenerating)
}

// generateStep runs one material through context building, rendering,
// generation, validation, and translation. A step is atomic from here to
// either PASS-persist or FAIL-persist.
func (o *Orchestrator) generateStep(ctx context.Context, course *types.Course, material *types.Material, materials []types.Material) (*AdvanceResult, error) {
	// Ground the prompt in every approved material; a rejected material's
	// old content is excluded by the approval filter.
	approved := approvedContents(materials)
	cc := grounding.BuildContext(approved)

	prompt, err := rendering.RenderPrompt(material.MaterialType, course, cc, approved)
	if err != nil {
		return nil, o.failStep(ctx, course, material, "", fmt.Sprintf("prompt rendering failed: %v", err), err)
	}

	genCtx := ctx
	if o.timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	raw, err := o.client.GenerateContent(genCtx, prompt, llm.TierStandard)
	if err != nil {
		return nil, o.failStep(ctx, course, material, "", err.Error(), err)
	}

	res := validation.Validate(raw, material.MaterialType, cc)
	if res.Blocks() {
		// Persist the raw output anyway so a human can inspect what the
		// model produced.
		verr := &ValidationError{MaterialType: material.MaterialType, Result: res}
		return nil, o.failStep(ctx, course, material, raw, verr.Error(), verr)
	}

	content := translation.Translate(ctx, o.client, raw, course.Language)
	if err := o.store.SaveMaterialContent(ctx, material.ID, content, types.MaterialStatusCompleted); err != nil {
		return nil, err
	}

	p, err := o.store.GetPipeline(ctx, course.ID)
	if err != nil {
		return nil, err
	}
	p.Status = types.PipelineStatusRunning
	p.WaitingForApproval = true
	p.ProgressPercent = types.ProgressFor(material.StepOrder, p.TotalSteps)
	p.ErrorMessage = nil
	if err := o.store.UpdatePipeline(ctx, p); err != nil {
		return nil, err
	}

	return &AdvanceResult{
		Generated:    true,
		Message:      fmt.Sprintf("Generated %s; waiting for approval", material.MaterialType),
		MaterialID:   &material.ID,
		MaterialType: material.MaterialType,
	}, nil
}

// failStep persists a step-local failure and re-throws the cause once to the
// invocation boundary. The failure is local to the material: previously
// approved materials are untouched and a later invocation retries this one.
func (o *Orchestrator) failStep(ctx context.Context, course *types.Course, material *types.Material, rawContent, message string, cause error) error {
	if err := o.store.SaveMaterialContent(ctx, material.ID, rawContent, types.MaterialStatusFailed); err != nil {
		log.Printf("pipeline: failed to persist failure on material %s: %v", material.ID, err)
	}

	if p, err := o.store.GetPipeline(ctx, course.ID); err == nil && p != nil {
		p.Status = types.PipelineStatusFailed
		p.WaitingForApproval = false
		p.ErrorMessage = &message
		if err := o.store.UpdatePipeline(ctx, p); err != nil {
			log.Printf("pipeline: failed to persist pipeline failure for course %s: %v", course.ID, err)
		}
	}
	if err := o.store.UpdateCourseStatus(ctx, course.ID, types.CourseStatusFailed); err != nil {
		log.Printf("pipeline: failed to persist course failure for %s: %v", course.ID, err)
	}

	return cause
}

// Approve records a human approval, optionally with edited content, and
// completes the pipeline when the final material is approved.
func (o *Orchestrator) Approve(ctx context.Context, materialID uuid.UUID, editedContent *string) (*types.Material, error) {
	material, err := o.store.GetMaterial(ctx, materialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, &NotFoundError{Resource: "material", ID: materialID.String()}
	}
	if material.Status != types.MaterialStatusCompleted {
		return nil, &ConflictError{Message: fmt.Sprintf("material %s is not awaiting approval", material.MaterialType)}
	}

	if err := o.store.SetMaterialApproval(ctx, materialID, types.ApprovalApproved, editedContent); err != nil {
		return nil, err
	}

	if err := o.afterReview(ctx, material.CourseID); err != nil {
		return nil, err
	}
	return o.store.GetMaterial(ctx, materialID)
}

// Reject records a human rejection; the material becomes eligible for
// regeneration on the next advance.
func (o *Orchestrator) Reject(ctx context.Context, materialID uuid.UUID) (*types.Material, error) {
	material, err := o.store.GetMaterial(ctx, materialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, &NotFoundError{Resource: "material", ID: materialID.String()}
	}
	if material.Status != types.MaterialStatusCompleted {
		return nil, &ConflictError{Message: fmt.Sprintf("material %s is not awaiting review", material.MaterialType)}
	}

	if err := o.store.SetMaterialApproval(ctx, materialID, types.ApprovalRejected, nil); err != nil {
		return nil, err
	}

	if err := o.afterReview(ctx, material.CourseID); err != nil {
		return nil, err
	}
	return o.store.GetMaterial(ctx, materialID)
}

// afterReview reconciles pipeline state with the material set after a human
// verdict: clears the approval gate, and when all eight materials are
// approved marks the pipeline and course completed.
func (o *Orchestrator) afterReview(ctx context.Context, courseID uuid.UUID) error {
	materials, err := o.store.ListMaterials(ctx, courseID)
	if err != nil {
		return err
	}
	p, err := o.store.GetPipeline(ctx, courseID)
	if err != nil {
		return err
	}
	if p == nil {
		return &NotFoundError{Resource: "pipeline", ID: courseID.String()}
	}

	approvedCount := 0
	for _, m := range materials {
		if m.ApprovalStatus == types.ApprovalApproved {
			approvedCount++
		}
	}

	p.WaitingForApproval = false
	if approvedCount == len(materials) && len(materials) == types.TotalSteps {
		p.Status = types.PipelineStatusCompleted
		p.ProgressPercent = 100
		p.CurrentMaterialID = nil
		if err := o.store.UpdatePipeline(ctx, p); err != nil {
			return err
		}
		return o.store.UpdateCourseStatus(ctx, courseID, types.CourseStatusCompleted)
	}

	p.Status = types.PipelineStatusRunning
	return o.store.UpdatePipeline(ctx, p)
}

// approvedContents maps material type to effective content for every
// approved material of the course.
func approvedContents(materials []types.Material) map[types.MaterialType]string {
	out := make(map[types.MaterialType]string)
	for _, m := range materials {
		if m.Status == types.MaterialStatusCompleted && m.ApprovalStatus == types.ApprovalApproved {
			if content := m.EffectiveContent(); content != "" {
				out[m.MaterialType] = content
			}
		}
	}
	return out
}
