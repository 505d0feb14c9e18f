package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/piwi3910/DowelMap/internal/model"
	"github.com/rs/zerolog"
)

// Stage names.
const (
	StageAllocate      = "allocate"
	StageDetect        = "detect"
	StageAreas         = "areas"
	StageFallbackAreas = "fallback_areas"
	StageMap           = "map"
	StageCleanup       = "cleanup"
	StageMirror        = "mirror"
	StageEnsureFaces   = "ensure_faces"
	StageTemplate      = "template"
)

// HolesFirstStageOrder maps holes before building areas, so areas are
// aligned to the mapped holes instead of the raw overlap.
var HolesFirstStageOrder = []string{
	StageAllocate, StageDetect, StageMap, StageAreas, StageFallbackAreas,
	StageCleanup, StageMirror, StageEnsureFaces, StageTemplate,
}

type runState struct {
	parts    []*model.Part
	conns    []*model.Connection
	seen     model.ConnectionSet
	template float64
}

type stage struct {
	requires []string
	run      func(p *Pipeline, st *runState)
}

var stages = map[string]stage{
	StageAllocate: {run: func(p *Pipeline, st *runState) {
		for _, part := range st.parts {
			p.AllocateSystematic(part, p.provisionalTemplate(part))
		}
	}},
	StageDetect: {run: func(p *Pipeline, st *runState) {
		st.conns = append(st.conns, p.DetectConnections(st.parts, st.seen)...)
	}},
	StageAreas: {requires: []string{StageDetect}, run: func(p *Pipeline, st *runState) {
		for _, c := range st.conns {
			p.BuildAreas(st.parts, c)
		}
	}},
	StageFallbackAreas: {requires: []string{StageDetect}, run: func(p *Pipeline, st *runState) {
		p.EnsureConnectionAreas(st.parts, st.conns)
	}},
	StageMap: {requires: []string{StageDetect}, run: func(p *Pipeline, st *runState) {
		for _, c := range st.conns {
			p.MapConnectionHoles(st.parts, c)
		}
	}},
	StageCleanup: {run: func(p *Pipeline, st *runState) {
		p.CleanupHoles(st.parts)
		for _, c := range st.conns {
			c.Advance(model.StateCleaned)
		}
	}},
	StageMirror: {run: func(p *Pipeline, st *runState) {
		for _, part := range st.parts {
			p.MirrorReinforcement(part)
		}
	}},
	StageEnsureFaces: {run: func(p *Pipeline, st *runState) {
		p.EnsureFaces(st.parts, p.Settings.DefaultTemplate)
	}},
	StageTemplate: {run: func(p *Pipeline, st *runState) {
		st.template = model.SelectTemplate(st.parts, p.Settings.DefaultTemplate)
		model.ApplyTemplate(st.parts, st.template)
	}},
}

// ValidateStageOrder checks that every stage is known, appears once and
// runs after the stages it depends on.
func ValidateStageOrder(order []string) error {
	done := map[string]bool{}
	for _, name := range order {
		st, ok := stages[name]
		if !ok {
			return fmt.Errorf("unknown stage %q", name)
		}
		if done[name] {
			return fmt.Errorf("stage %q listed twice", name)
		}
		for _, req := range st.requires {
			if !done[req] {
				return fmt.Errorf("stage %q must run after %q", name, req)
			}
		}
		done[name] = true
	}
	return nil
}

// Pipeline turns a view document into drilled parts. A Pipeline is not safe
// for concurrent use.
type Pipeline struct {
	Settings   model.Settings
	Classifier Classifier
	Log        zerolog.Logger

	nextID int
}

func New(settings model.Settings) *Pipeline {
	return &Pipeline{
		Settings:   settings,
		Classifier: NewPatternClassifier(settings),
		Log:        zerolog.Nop(),
	}
}

// provisionalTemplate is the template thickness closest to the part's own
// thickness. The template stage later settles on one value for all parts.
func (p *Pipeline) provisionalTemplate(part *model.Part) float64 {
	if len(p.Settings.TemplateThicknesses) == 0 {
		return p.Settings.DefaultTemplate
	}
	return model.NearestTemplate(part.Thickness, p.Settings.TemplateThicknesses)
}

// Run builds the parts of doc and executes the configured stages in order.
// Parts that cannot be built are dropped and listed in the result. The only
// error is an invalid stage order.
func (p *Pipeline) Run(doc model.ViewDocument) (model.Result, error) {
	order := p.Settings.StageOrder
	if len(order) == 0 {
		order = model.DefaultStageOrder
	}
	if err := ValidateStageOrder(order); err != nil {
		return model.Result{}, fmt.Errorf("invalid stage order: %w", err)
	}

	p.nextID = 0
	parts, dropped := p.BuildParts(doc)
	if p.Settings.ReOrigin {
		reOrigin(parts)
	}

	st := &runState{parts: parts, seen: model.ConnectionSet{}, template: p.Settings.DefaultTemplate}
	for _, name := range order {
		stages[name].run(p, st)
		p.Log.Debug().Str("stage", name).Int("connections", len(st.conns)).Msg("stage done")
	}

	res := model.Result{
		RunID:       uuid.New().String(),
		Parts:       parts,
		Connections: st.conns,
		Template:    st.template,
		Dropped:     dropped,
		Stages:      append([]string(nil), order...),
	}
	p.Log.Info().
		Int("parts", len(parts)).
		Int("dropped", len(dropped)).
		Int("connections", len(st.conns)).
		Int("holes", res.TotalHoles()).
		Float64("template", res.Template).
		Msg("pipeline finished")
	return res, nil
}
