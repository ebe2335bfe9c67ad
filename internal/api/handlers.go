package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/compound-cli/internal/model"
	"github.com/sells-group/compound-cli/internal/predict"
	"github.com/sells-group/compound-cli/pkg/pubchem"
)

const maxBodyBytes = 1 << 20

// Error messages returned in the {"error": ...} envelope.
const (
	msgInvalidBody      = "invalid request body"
	msgMissingFields    = "missing required fields"
	msgNotFound         = "PubChem properties not found"
	msgCompoundNotFound = "Drug not found in PubChem database. Please try:"
	msgFormulaCheck     = "Failed to check formula in PubChem"
)

type handler struct {
	svc Predictor
}

type errorBody struct {
	Error       string   `json:"error"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// flexID accepts a JSON string or number.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return eris.Errorf("api: id must be a string or number, got %s", data)
	}
	*f = flexID(n.String())
	return nil
}

type predictRequest struct {
	Structure string `json:"structure"`
	SMILES    string `json:"smiles"`
	ID        flexID `json:"id"`
	CID       flexID `json:"cid"`
	Name      string `json:"name"`
	DrugName  string `json:"drugName"`
}

func (req predictRequest) known() model.KnownInput {
	return model.KnownInput{
		Structure: firstNonEmpty(req.Structure, req.SMILES),
		ID:        firstNonEmpty(string(req.ID), string(req.CID)),
	}
}

func (req predictRequest) name() string {
	return firstNonEmpty(req.Name, req.DrugName)
}

type predictUnknownRequest struct {
	Formula       string `json:"chemical_formula"`
	ReceptorID    string `json:"receptor_id"`
	ReceptorPDBID string `json:"receptor_pdb_id"`
}

func (h *handler) banner(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "AI Service is running"})
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) predict(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if !decode(w, r, &req) {
		return
	}

	in := req.known()
	var (
		out *model.Prediction
		err error
	)
	if in.Structure == "" && in.ID == "" && strings.TrimSpace(req.name()) != "" {
		out, err = h.svc.PredictByName(r.Context(), req.name())
	} else {
		out, err = h.svc.Predict(r.Context(), in)
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handler) predictUnknown(w http.ResponseWriter, r *http.Request) {
	var req predictUnknownRequest
	if !decode(w, r, &req) {
		return
	}

	out, err := h.svc.PredictUnknown(r.Context(), model.UnknownInput{
		Formula:    req.Formula,
		ReceptorID: firstNonEmpty(req.ReceptorID, req.ReceptorPDBID),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handler) resolve(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Resolve(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handler) checkFormula(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.CheckFormula(r.Context(), r.URL.Query().Get("formula"))
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, out)
	case eris.Is(err, model.ErrMissingFields):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: msgMissingFields})
	default:
		logFailure(r, err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: msgFormulaCheck})
	}
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		zap.L().Debug("api: decode request body",
			zap.String("request_id", RequestID(r.Context())),
			zap.Error(err),
		)
		writeJSON(w, http.StatusBadRequest, errorBody{Error: msgInvalidBody})
		return false
	}
	return true
}

// writeServiceError maps a service error onto a status code and envelope.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case eris.Is(err, model.ErrMissingFields):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: msgMissingFields})
	case eris.Is(err, predict.ErrCompoundNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: msgCompoundNotFound, Suggestions: predict.Suggestions})
	case pubchem.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, errorBody{Error: msgNotFound})
	default:
		logFailure(r, err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
	}
}

func logFailure(r *http.Request, err error) {
	zap.L().Error("api: request failed",
		zap.String("request_id", RequestID(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("api: encode response", zap.Error(err))
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
