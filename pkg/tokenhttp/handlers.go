package tokenhttp

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/sealkit/pkg/codec"
	"github.com/dmitrymomot/sealkit/pkg/logger"
)

const maxBodyBytes = 64 << 10

// IssueRequest is the body of POST /tokens/{variant}.
type IssueRequest struct {
	Value json.RawMessage `json:"value" validate:"required"`
}

// IssueResponse is the data of a successful issue.
type IssueResponse struct {
	Token   string        `json:"token"`
	Variant codec.Variant `json:"variant"`
}

// VerifyRequest is the body of POST /tokens/{variant}/verify.
type VerifyRequest struct {
	Token string `json:"token" validate:"required,max=8192"`
}

// VerifyResponse carries the decoded value. Values that are not JSON (signer
// tokens minted outside this service) are returned as JSON strings.
type VerifyResponse struct {
	Value   json.RawMessage `json:"value"`
	Variant codec.Variant   `json:"variant"`
}

// Handlers serves issue and verify endpoints for a set of codecs, one per variant.
type Handlers struct {
	codecs    map[codec.Variant]codec.Codec
	validator *requestValidator
	log       *slog.Logger
}

// NewHandlers registers codecs by their variant. A later codec replaces an
// earlier one of the same variant. Nil codecs are skipped.
func NewHandlers(log *slog.Logger, codecs ...codec.Codec) *Handlers {
	if log == nil {
		log = logger.Discard()
	}
	h := &Handlers{
		codecs:    make(map[codec.Variant]codec.Codec, len(codecs)),
		validator: newRequestValidator(),
		log:       log,
	}
	for _, c := range codecs {
		if c != nil {
			h.codecs[c.Variant()] = c
		}
	}
	return h
}

// Variants lists the served variants in sorted order.
func (h *Handlers) Variants() []codec.Variant {
	out := make([]codec.Variant, 0, len(h.codecs))
	for v := range h.codecs {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

func (h *Handlers) codecFor(w http.ResponseWriter, r *http.Request) (codec.Codec, bool) {
	v, err := codec.ParseVariant(chi.URLParam(r, "variant"))
	if err == nil {
		if c, ok := h.codecs[v]; ok {
			return c, true
		}
	}
	writeError(w, r, http.StatusNotFound, "unknown_variant", ErrUnknownVariant.Error())
	return nil, false
}

// decodeBody reads a JSON body into dst and validates it. On failure it
// writes a 400 response and returns false.
func (h *Handlers) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", ErrBadRequest.Error())
		return false
	}
	details, err := h.validator.check(dst)
	if err != nil {
		h.log.ErrorContext(r.Context(), "request validation failed", logger.Component("tokenhttp"), logger.Error(err))
		writeError(w, r, http.StatusInternalServerError, codec.KindInternal.String(), messageFor(codec.KindInternal))
		return false
	}
	if details != nil {
		writeJSON(w, http.StatusBadRequest, Response{Error: &ErrorDetail{
			Code:      "bad_request",
			Message:   ErrBadRequest.Error(),
			Details:   details,
			RequestID: RequestIDFromContext(r.Context()),
		}})
		return false
	}
	return true
}

// Issue encodes the request value. The value is taken as raw JSON for both
// variants, so tokens interoperate with codec.Issue and codec.Open.
func (h *Handlers) Issue(w http.ResponseWriter, r *http.Request) {
	c, ok := h.codecFor(w, r)
	if !ok {
		return
	}
	var req IssueRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	token, err := c.Encode(req.Value)
	if err != nil {
		h.fail(w, r, c, "issue failed", err)
		return
	}
	writeJSON(w, http.StatusCreated, Response{Data: IssueResponse{Token: token, Variant: c.Variant()}})
}

// Verify decodes the request token and returns its value.
func (h *Handlers) Verify(w http.ResponseWriter, r *http.Request) {
	c, ok := h.codecFor(w, r)
	if !ok {
		return
	}
	var req VerifyRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	data, err := c.Decode(req.Token)
	if err != nil {
		h.fail(w, r, c, "verify failed", err)
		return
	}
	writeJSON(w, http.StatusOK, Response{Data: VerifyResponse{Value: asJSON(data), Variant: c.Variant()}})
}

// Health reports the served variants.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Response{Data: map[string]any{
		"status":   "ok",
		"variants": h.Variants(),
	}})
}

func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, c codec.Codec, msg string, err error) {
	kind := codec.KindOf(err)
	status := StatusFor(err)
	attrs := []any{
		logger.Component("tokenhttp"),
		logger.Variant(c.Variant()),
		logger.FailureKind(err),
	}
	if status >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), msg, append(attrs, logger.Error(err))...)
	} else {
		h.log.InfoContext(r.Context(), msg, attrs...)
	}
	writeError(w, r, status, kind.String(), messageFor(kind))
}

func asJSON(data []byte) json.RawMessage {
	if data == nil {
		return json.RawMessage("null")
	}
	if json.Valid(data) {
		return data
	}
	quoted, err := json.Marshal(string(data))
	if err != nil {
		return json.RawMessage("null")
	}
	return quoted
}
