// Package predict orchestrates compound predictions: it fetches upstream
// records, runs the score functions and composes the report payloads.
package predict

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/compound-cli/internal/formula"
	"github.com/sells-group/compound-cli/internal/links"
	"github.com/sells-group/compound-cli/internal/model"
	"github.com/sells-group/compound-cli/internal/monitoring"
	"github.com/sells-group/compound-cli/internal/property"
	"github.com/sells-group/compound-cli/internal/report"
	"github.com/sells-group/compound-cli/internal/scorer"
	"github.com/sells-group/compound-cli/pkg/pubchem"
	"github.com/sells-group/compound-cli/pkg/rcsb"
)

// NoDescription is reported when PubChem lists no synonym for a compound.
const NoDescription = "No description available"

// ErrCompoundNotFound is returned when a compound name cannot be resolved.
var ErrCompoundNotFound = eris.New("compound not found in PubChem")

// Suggestions accompany a failed name resolution.
var Suggestions = []string{
	"Check the spelling of the drug name",
	"Try using the generic name instead of brand name",
	"Use the chemical name if available",
	"Try alternative names or common variations",
}

// Service runs predictions against PubChem and RCSB. It holds no
// per-request state and is safe for concurrent use.
type Service struct {
	pubchem pubchem.Client
	rcsb    rcsb.Client
	metrics *monitoring.Metrics
}

// Option configures a Service.
type Option func(*Service)

// WithMetrics records upstream and score outcomes on m.
func WithMetrics(m *monitoring.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// NewService creates a Service. rc may be nil, in which case receptor
// lookups are skipped.
func NewService(pc pubchem.Client, rc rcsb.Client, opts ...Option) *Service {
	s := &Service{pubchem: pc, rcsb: rc}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Predict builds the report for a known compound. Only the primary property
// fetch can fail the request; every enrichment call degrades its own field.
func (s *Service) Predict(ctx context.Context, in model.KnownInput) (*model.Prediction, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	cid := strings.TrimSpace(in.ID)
	log := zap.L().With(zap.String("cid", cid))

	props, err := s.pubchem.Properties(ctx, cid)
	s.observe("pubchem", "properties", err)
	if err != nil {
		return nil, eris.Wrapf(err, "predict: properties for %s", cid)
	}
	bag := property.Bag(props)
	log.Debug("predict: fetched properties", zap.Int("fields", len(bag)))

	description := s.description(ctx, cid)

	scores := scorer.ScoreAll(bag)
	s.observeScores(scores)

	genome := report.Compose(s.findings(ctx, cid))

	p := &model.Prediction{
		BindingAffinity:    scores.BindingAffinity,
		Toxicity:           scores.Toxicity,
		DrugLikeness:       scores.DrugLikeness,
		Effectiveness:      scores.Effectiveness,
		GenomeReport:       genome,
		MolecularWeight:    property.Get(bag, "MolecularWeight", property.Unavailable),
		MolecularFormula:   property.Get(bag, "MolecularFormula", property.Unavailable),
		IUPACName:          property.Get(bag, "IUPACName", property.Unavailable),
		HBondDonorCount:    property.Get(bag, "HBondDonorCount", property.Unavailable),
		HBondAcceptorCount: property.Get(bag, "HBondAcceptorCount", property.Unavailable),
		RotatableBondCount: property.Get(bag, "RotatableBondCount", property.Unavailable),
		XLogP:              property.Get(bag, "XLogP", property.Unavailable),
		Description:        description,
		Set: links.For(
			cid,
			property.Text(bag, "InChIKey", ""),
			property.Text(bag, "IUPACName", ""),
		),
	}

	log.Info("predict: compound scored",
		zap.String("binding_affinity", p.BindingAffinity.String()),
		zap.String("toxicity", p.Toxicity.String()),
		zap.String("drug_likeness", p.DrugLikeness.String()),
	)
	return p, nil
}

// PredictByName resolves name to a CID, fetches its canonical SMILES and
// runs Predict.
func (s *Service) PredictByName(ctx context.Context, name string) (*model.Prediction, error) {
	res, err := s.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	smiles, err := s.pubchem.Property(ctx, res.CID, "CanonicalSMILES")
	s.observe("pubchem", "smiles", err)
	if err != nil {
		return nil, eris.Wrapf(err, "predict: smiles for %s", res.CID)
	}

	return s.Predict(ctx, model.KnownInput{Structure: smiles, ID: res.CID})
}

// PredictUnknown builds the simulated report for a formula-only compound.
// The receptor lookup is optional enrichment.
func (s *Service) PredictUnknown(ctx context.Context, in model.UnknownInput) (*model.UnknownPrediction, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	f := strings.TrimSpace(in.Formula)
	receptor := strings.TrimSpace(in.ReceptorID)

	est := formula.Simulate(f)

	p := &model.UnknownPrediction{
		BindingAffinity: est.BindingAffinity,
		Toxicity:        est.Toxicity,
		DrugLikeness:    est.DrugLikeness,
		Effectiveness:   est.BindingScore,
		GenomeReport:    report.ComposeSimulated(est.BindingAffinity.String()),
		MolecularWeight: formula.WeightText(est.MolecularWeight),
		Description:     fmt.Sprintf("Analysis of unknown compound with formula %s targeting receptor %s", f, receptor),
		XLogP:           est.XLogP,
		ReceptorTitle:   s.receptorTitle(ctx, receptor),
	}

	zap.L().Info("predict: unknown compound simulated",
		zap.String("formula", f),
		zap.String("receptor", receptor),
		zap.Float64("molecular_weight", est.MolecularWeight),
		zap.String("binding_affinity", p.BindingAffinity.String()),
	)
	return p, nil
}

// Resolve maps a compound name to a PubChem CID. Name variations are tried
// in order before falling back to a word search.
func (s *Service) Resolve(ctx context.Context, name string) (*model.Resolution, error) {
	variations := pubchem.NameVariations(name)
	if len(variations) == 0 {
		return nil, eris.Wrap(model.ErrMissingFields, "predict: empty compound name")
	}

	for _, v := range variations {
		cids, err := s.pubchem.CIDsByName(ctx, v, false)
		s.observe("pubchem", "name_lookup", err)
		if err == nil && len(cids) > 0 {
			return &model.Resolution{Name: name, CID: strconv.FormatInt(cids[0], 10), MatchedAs: v}, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, eris.Wrap(ctxErr, "predict: resolve name")
		}
		if err != nil && !pubchem.IsNotFound(err) {
			zap.L().Warn("predict: name lookup failed", zap.String("name", v), zap.Error(err))
		}
	}

	base := variations[0]
	cids, err := s.pubchem.CIDsByName(ctx, base, true)
	s.observe("pubchem", "name_search", err)
	if err == nil && len(cids) > 0 {
		return &model.Resolution{Name: name, CID: strconv.FormatInt(cids[0], 10), MatchedAs: base, Broad: true}, nil
	}
	if err != nil && !pubchem.IsNotFound(err) {
		zap.L().Warn("predict: name search failed", zap.String("name", base), zap.Error(err))
	}

	return nil, eris.Wrapf(ErrCompoundNotFound, "predict: resolve %q", name)
}

// CheckFormula reports whether PubChem has a compound with the exact
// formula, and its IUPAC name when it does.
func (s *Service) CheckFormula(ctx context.Context, f string) (*model.FormulaCheck, error) {
	f = strings.TrimSpace(f)
	if f == "" {
		return nil, eris.Wrap(model.ErrMissingFields, "predict: empty formula")
	}

	cids, err := s.pubchem.CIDsByFormula(ctx, f)
	s.observe("pubchem", "formula_lookup", err)
	if err != nil {
		if pubchem.IsNotFound(err) {
			return &model.FormulaCheck{Exists: false}, nil
		}
		return nil, eris.Wrapf(err, "predict: check formula %s", f)
	}
	if len(cids) == 0 {
		return &model.FormulaCheck{Exists: false}, nil
	}

	cid := strconv.FormatInt(cids[0], 10)
	name, err := s.pubchem.Property(ctx, cid, "IUPACName")
	s.observe("pubchem", "iupac_name", err)
	if err != nil {
		zap.L().Warn("predict: iupac name unavailable", zap.String("cid", cid), zap.Error(err))
	}

	return &model.FormulaCheck{Exists: true, Name: name, CID: cid}, nil
}

func (s *Service) description(ctx context.Context, cid string) string {
	syn, err := s.pubchem.Synonym(ctx, cid)
	s.observe("pubchem", "synonym", err)
	if err != nil {
		s.enrichmentFailed("synonym", cid, err)
		return NoDescription
	}
	if strings.TrimSpace(syn) == "" {
		return NoDescription
	}
	return syn
}

// findings gathers the genome report inputs. Calls run sequentially and each
// failure drops only its own section.
func (s *Service) findings(ctx context.Context, cid string) report.Findings {
	var f report.Findings

	assays, err := s.pubchem.AssaySummaries(ctx, cid)
	s.observe("pubchem", "assay_summary", err)
	if err != nil {
		s.enrichmentFailed("assay_summary", cid, err)
	}
	for _, a := range assays {
		f.Assays = append(f.Assays, report.Assay{TargetName: a.TargetName, Activity: a.BioActivitySummary})
	}

	targets, err := s.pubchem.ProteinTargets(ctx, cid)
	s.observe("pubchem", "protein_targets", err)
	if err != nil {
		s.enrichmentFailed("protein_targets", cid, err)
	}
	for _, t := range targets {
		f.Targets = append(f.Targets, report.ProteinTarget{ProteinName: t.ProteinName, InteractionType: t.InteractionType})
	}

	pathways, err := s.pubchem.Pathways(ctx, cid)
	s.observe("pubchem", "pathways", err)
	if err != nil {
		s.enrichmentFailed("pathways", cid, err)
	}
	for _, p := range pathways {
		f.Pathways = append(f.Pathways, p.PathwayName)
	}

	return f
}

func (s *Service) receptorTitle(ctx context.Context, pdbID string) string {
	if s.rcsb == nil {
		return ""
	}
	entry, err := s.rcsb.Entry(ctx, pdbID)
	s.observe("rcsb", "entry", err)
	if err != nil {
		zap.L().Warn("predict: receptor lookup failed", zap.String("receptor", pdbID), zap.Error(err))
		return ""
	}
	return entry.Title()
}

func (s *Service) enrichmentFailed(call, cid string, err error) {
	zap.L().Warn("predict: enrichment unavailable",
		zap.String("call", call),
		zap.String("cid", cid),
		zap.Error(err),
	)
}

func (s *Service) observe(service, operation string, err error) {
	s.metrics.ObserveUpstream(service, operation, outcome(err))
}

func (s *Service) observeScores(sc scorer.Scores) {
	s.metrics.ObserveScore("binding_affinity", sc.BindingAffinity.Kind.String())
	s.metrics.ObserveScore("toxicity", sc.Toxicity.Kind.String())
	s.metrics.ObserveScore("drug_likeness", sc.DrugLikeness.Kind.String())
	if sc.Effectiveness == nil {
		s.metrics.ObserveScore("effectiveness", "null")
	} else {
		s.metrics.ObserveScore("effectiveness", scorer.KindPercent.String())
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return monitoring.OutcomeOK
	case pubchem.IsNotFound(err), eris.Is(err, rcsb.ErrNotFound):
		return monitoring.OutcomeNotFound
	default:
		return monitoring.OutcomeError
	}
}
