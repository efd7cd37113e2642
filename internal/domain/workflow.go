package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/reprise/internal/adapter"
	"github.com/mouse-blink/reprise/internal/controller"
	"github.com/mouse-blink/reprise/internal/logging"
	m "github.com/mouse-blink/reprise/internal/model"
)

var (
	// ErrInvalidUUID is returned for identifiers that are not UUIDs.
	ErrInvalidUUID = errors.New("invalid uuid")
	// ErrEmptyContent is returned when creating a motif or citation with no text.
	ErrEmptyContent = errors.New("empty content")
)

// MotifsArgs selects one page of the motif listing. Pages are 1-based.
type MotifsArgs struct {
	Page     int
	PageSize int
}

// AddMotifArgs describes a new motif.
type AddMotifArgs struct {
	Content  string
	Citation string
}

// EditMotifArgs replaces the content of a stored motif. An empty Citation
// keeps the stored one.
type EditMotifArgs struct {
	UUID     string
	Content  string
	Citation string
}

// DeleteMotifArgs names the motif to remove.
type DeleteMotifArgs struct {
	UUID string
}

// AddCitationArgs describes a new citation.
type AddCitationArgs struct {
	Title string
}

// EditArgs selects the cloze deletion to edit. An empty ClozeUUID creates a
// new deletion. When Bins is non-nil every interval in it is applied to the
// seeded selection as one press, drag and release gesture and the result is
// saved without opening the editor.
type EditArgs struct {
	MotifUUID string
	ClozeUUID string
	Bins      m.IntervalSet
}

// DeleteArgs names the cloze deletion to remove.
type DeleteArgs struct {
	ClozeUUID string
}

// RepriseArgs configures reprisal rendering.
type RepriseArgs struct {
	Token string
}

// Workflow defines the use cases of the reprise CLI.
type Workflow interface {
	Motifs(ctx context.Context, args MotifsArgs) error
	AddMotif(ctx context.Context, args AddMotifArgs) error
	EditMotif(ctx context.Context, args EditMotifArgs) error
	DeleteMotif(ctx context.Context, args DeleteMotifArgs) error
	Citations(ctx context.Context) error
	AddCitation(ctx context.Context, args AddCitationArgs) error
	EditClozeDeletion(ctx context.Context, args EditArgs) error
	DeleteClozeDeletion(ctx context.Context, args DeleteArgs) error
	Reprise(ctx context.Context, args RepriseArgs) error
}

type workflow struct {
	store adapter.Store
	ui    controller.UI
}

// NewWorkflow creates a new Workflow instance over store, reporting through ui.
func NewWorkflow(store adapter.Store, ui controller.UI) Workflow {
	return &workflow{
		store: store,
		ui:    ui,
	}
}

// Motifs fetches one page of motifs and the citation list concurrently and
// displays every cloze deletion previewed over its motif.
func (w *workflow) Motifs(ctx context.Context, args MotifsArgs) error {
	ctx = logging.WithOperation(ctx, "motifs")

	var (
		page      m.MotifPage
		citations []m.Citation
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		page, err = w.store.ListMotifs(gctx, args.Page, args.PageSize)
		if err != nil {
			return fmt.Errorf("failed to list motifs: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error

		citations, err = w.store.ListCitations(gctx)
		if err != nil {
			return fmt.Errorf("failed to list citations: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logging.ErrorContext(ctx, "motif listing failed", "error", err)
		return w.ui.DisplayMotifs(controller.MotifListing{}, err)
	}

	previews := make([]m.MotifPreview, 0, len(page.Motifs))
	for _, motif := range page.Motifs {
		previews = append(previews, previewMotif(ctx, motif))
	}

	logging.DebugContext(ctx, "motifs listed", "count", len(previews), "total", page.TotalCount)

	return w.ui.DisplayMotifs(controller.MotifListing{
		Motifs:     previews,
		Citations:  citations,
		Page:       args.Page,
		PageSize:   args.PageSize,
		TotalCount: page.TotalCount,
	}, nil)
}

// AddMotif stores a new motif.
func (w *workflow) AddMotif(ctx context.Context, args AddMotifArgs) error {
	ctx = logging.WithOperation(ctx, "add_motif")

	if strings.TrimSpace(args.Content) == "" {
		return fmt.Errorf("cannot add motif: %w", ErrEmptyContent)
	}

	motif, err := w.store.CreateMotif(ctx, args.Content, strings.TrimSpace(args.Citation))
	if err != nil {
		logging.ErrorContext(ctx, "motif creation failed", "error", err)
		return fmt.Errorf("failed to add motif: %w", err)
	}

	logging.InfoContext(ctx, "motif created", "motif", motif.UUID)

	return w.ui.DisplayMotifCreated(motif)
}

// EditMotif replaces a motif's content. Deletions are not moved with the
// text; any that no longer fit are reported in the preview.
func (w *workflow) EditMotif(ctx context.Context, args EditMotifArgs) error {
	ctx = logging.WithOperation(ctx, "edit_motif")

	if err := checkUUID("motif", args.UUID); err != nil {
		return err
	}

	if strings.TrimSpace(args.Content) == "" {
		return fmt.Errorf("cannot edit motif: %w", ErrEmptyContent)
	}

	motif, err := w.store.UpdateMotif(ctx, args.UUID, args.Content, strings.TrimSpace(args.Citation))
	if err != nil {
		logging.ErrorContext(ctx, "motif update failed", "motif", args.UUID, "error", err)
		return fmt.Errorf("failed to edit motif %s: %w", args.UUID, err)
	}

	logging.InfoContext(ctx, "motif updated", "motif", motif.UUID)

	return w.ui.DisplayMotifUpdated(previewMotif(ctx, motif))
}

// DeleteMotif removes a motif and its cloze deletions.
func (w *workflow) DeleteMotif(ctx context.Context, args DeleteMotifArgs) error {
	ctx = logging.WithOperation(ctx, "delete_motif")

	if err := checkUUID("motif", args.UUID); err != nil {
		return err
	}

	if err := w.store.DeleteMotif(ctx, args.UUID); err != nil {
		logging.ErrorContext(ctx, "motif removal failed", "motif", args.UUID, "error", err)
		return fmt.Errorf("failed to delete motif %s: %w", args.UUID, err)
	}

	logging.InfoContext(ctx, "motif deleted", "motif", args.UUID)

	return w.ui.DisplayMotifDeleted(args.UUID)
}

// Citations displays every citation.
func (w *workflow) Citations(ctx context.Context) error {
	ctx = logging.WithOperation(ctx, "citations")

	citations, err := w.store.ListCitations(ctx)
	if err != nil {
		err = fmt.Errorf("failed to list citations: %w", err)
		logging.ErrorContext(ctx, "citation listing failed", "error", err)

		return w.ui.DisplayCitations(nil, err)
	}

	return w.ui.DisplayCitations(citations, nil)
}

// AddCitation stores a new citation title.
func (w *workflow) AddCitation(ctx context.Context, args AddCitationArgs) error {
	ctx = logging.WithOperation(ctx, "add_citation")

	title := strings.TrimSpace(args.Title)
	if title == "" {
		return fmt.Errorf("cannot add citation: %w", ErrEmptyContent)
	}

	citation, err := w.store.AddCitation(ctx, title)
	if err != nil {
		logging.ErrorContext(ctx, "citation creation failed", "error", err)
		return fmt.Errorf("failed to add citation: %w", err)
	}

	return w.ui.DisplayCitationAdded(citation)
}

// EditClozeDeletion seeds a selection from the stored deletion (or an empty
// one), lets the user edit it and persists the outcome. An empty selection is
// never saved; removing a deletion is an explicit delete.
func (w *workflow) EditClozeDeletion(ctx context.Context, args EditArgs) error {
	ctx = logging.WithOperation(ctx, "edit_cloze_deletion")

	if err := checkUUID("motif", args.MotifUUID); err != nil {
		return err
	}

	if args.ClozeUUID != "" {
		if err := checkUUID("cloze deletion", args.ClozeUUID); err != nil {
			return err
		}
	}

	motif, err := w.store.GetMotif(ctx, args.MotifUUID)
	if err != nil {
		logging.ErrorContext(ctx, "motif lookup failed", "motif", args.MotifUUID, "error", err)
		return fmt.Errorf("failed to load motif %s: %w", args.MotifUUID, err)
	}

	var seed m.IntervalSet

	if args.ClozeUUID != "" {
		existing, ok := motif.FindClozeDeletion(args.ClozeUUID)
		if !ok {
			return fmt.Errorf("cloze deletion %s on motif %s: %w", args.ClozeUUID, motif.UUID, adapter.ErrNotFound)
		}

		seed = existing.MaskTuples
	}

	selection, err := NewSelectionFrom(motif.Length(), seed)
	if err != nil {
		return fmt.Errorf("cannot edit cloze deletion %s: %w", args.ClozeUUID, err)
	}

	result, err := w.edit(motif, args, selection)
	if err != nil {
		return err
	}

	logging.DebugContext(ctx, "cloze deletion edited", "action", result.Action.String(), "bins", selection.Len())

	switch result.Action {
	case controller.EditSave:
		return w.save(ctx, motif, args.ClozeUUID, result.Intervals)
	case controller.EditDelete:
		if args.ClozeUUID == "" {
			return nil
		}

		return w.DeleteClozeDeletion(ctx, DeleteArgs{ClozeUUID: args.ClozeUUID})
	default:
		return nil
	}
}

func (w *workflow) edit(motif m.Motif, args EditArgs, selection *Selection) (controller.EditResult, error) {
	if args.Bins == nil {
		result, err := w.ui.EditClozeDeletion(controller.EditRequest{
			Motif:     motif,
			ClozeUUID: args.ClozeUUID,
			Selection: selection,
		})
		if err != nil {
			return controller.EditResult{}, fmt.Errorf("failed to edit cloze deletion: %w", err)
		}

		return result, nil
	}

	if err := ApplyGestures(selection, args.Bins); err != nil {
		return controller.EditResult{}, err
	}

	return controller.EditResult{Action: controller.EditSave, Intervals: selection.Intervals()}, nil
}

func (w *workflow) save(ctx context.Context, motif m.Motif, clozeUUID string, set m.IntervalSet) error {
	if len(set) == 0 {
		return fmt.Errorf("cannot save cloze deletion: %w", ErrEmptySelection)
	}

	if err := Validate(set, motif.Length()); err != nil {
		return fmt.Errorf("cannot save cloze deletion: %w", err)
	}

	var (
		cd  m.ClozeDeletion
		err error
	)

	if clozeUUID == "" {
		cd, err = w.store.CreateClozeDeletion(ctx, motif.UUID, set)
	} else {
		cd, err = w.store.UpdateClozeDeletion(ctx, clozeUUID, set)
	}

	if err != nil {
		logging.ErrorContext(ctx, "cloze deletion save failed", "motif", motif.UUID, "error", err)
		return fmt.Errorf("failed to save cloze deletion: %w", err)
	}

	if cd.MaskTuples == nil {
		cd.MaskTuples = set
	}

	motif = WithClozeDeletion(motif, cd)

	logging.InfoContext(ctx, "cloze deletion saved", "motif", motif.UUID, "cloze_deletion", cd.UUID, "intervals", len(cd.MaskTuples))

	return w.ui.DisplayClozeDeletionSaved(previewMotif(ctx, motif), cd)
}

// DeleteClozeDeletion removes a cloze deletion by identity.
func (w *workflow) DeleteClozeDeletion(ctx context.Context, args DeleteArgs) error {
	ctx = logging.WithOperation(ctx, "delete_cloze_deletion")

	if err := checkUUID("cloze deletion", args.ClozeUUID); err != nil {
		return err
	}

	if err := w.store.DeleteClozeDeletion(ctx, args.ClozeUUID); err != nil {
		logging.ErrorContext(ctx, "cloze deletion removal failed", "cloze_deletion", args.ClozeUUID, "error", err)
		return fmt.Errorf("failed to delete cloze deletion %s: %w", args.ClozeUUID, err)
	}

	return w.ui.DisplayClozeDeletionDeleted(args.ClozeUUID)
}

// Reprise asks the store for the next motifs to review and displays each one
// masked with its reveal segments. A motif whose deletions do not fit its
// content is skipped; the rest are still shown.
func (w *workflow) Reprise(ctx context.Context, args RepriseArgs) error {
	ctx = logging.WithOperation(ctx, "reprise")

	token := args.Token
	if token == "" {
		token = DefaultMaskToken
	}

	motifs, err := w.store.Reprise(ctx)
	if err != nil {
		err = fmt.Errorf("failed to generate reprisals: %w", err)
		logging.ErrorContext(ctx, "reprise failed", "error", err)

		return w.ui.DisplayReprisals(nil, err)
	}

	reprisals := make([]m.Reprisal, 0, len(motifs))

	var buildErr error

	for _, motif := range motifs {
		reprisal, err := BuildReprisal(motif, token)
		if err != nil {
			logging.WarnContext(ctx, "skipping motif with invalid cloze deletion", "motif", motif.UUID, "error", err)
			buildErr = errors.Join(buildErr, fmt.Errorf("motif %s: %w", motif.UUID, err))

			continue
		}

		reprisals = append(reprisals, reprisal)
	}

	if len(reprisals) == 0 && buildErr != nil {
		logging.ErrorContext(ctx, "no motif could be reprised", "error", buildErr)
		return w.ui.DisplayReprisals(nil, buildErr)
	}

	logging.DebugContext(ctx, "reprisals built", "count", len(reprisals))

	return w.ui.DisplayReprisals(reprisals, nil)
}

// ApplyGestures plays each interval onto selection as a press on its start,
// a drag across the rest of it and a release.
func ApplyGestures(selection *Selection, gestures m.IntervalSet) error {
	for _, gesture := range gestures {
		if gesture.Start > gesture.End {
			return fmt.Errorf("%w: gesture %s", ErrInvalidInterval, gesture)
		}

		if err := selection.Press(gesture.Start); err != nil {
			return err
		}

		for index := gesture.Start + 1; index <= gesture.End; index++ {
			if err := selection.Enter(index); err != nil {
				selection.Leave()
				return err
			}
		}

		selection.Release()
	}

	return nil
}

// previewMotif renders every deletion of motif on its own. A deletion whose
// tuples do not fit the content keeps its error instead of segments.
func previewMotif(ctx context.Context, motif m.Motif) m.MotifPreview {
	preview := m.MotifPreview{
		Motif:     motif,
		Deletions: make([]m.DeletionPreview, 0, len(motif.ClozeDeletions)),
	}

	for _, cd := range motif.ClozeDeletions {
		segments, err := PreviewSegments(motif.Content, cd.MaskTuples)
		if err != nil {
			logging.WarnContext(ctx, "cloze deletion does not fit its motif",
				"motif", motif.UUID, "cloze_deletion", cd.UUID, "error", err)
		}

		preview.Deletions = append(preview.Deletions, m.DeletionPreview{
			ClozeDeletion: cd,
			Segments:      segments,
			Err:           err,
		})
	}

	return preview
}

func checkUUID(kind, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s %q", ErrInvalidUUID, kind, id)
	}

	return nil
}
