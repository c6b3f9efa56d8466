package api

import (
	"io"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/jaliph/chatlens/analyzer"
	"github.com/jaliph/chatlens/lexicon"
	"github.com/jaliph/chatlens/models"
	"github.com/jaliph/chatlens/parser"
	"github.com/jaliph/chatlens/store"
)

// maxUploadBytes bounds the multipart form held in memory per upload.
const maxUploadBytes = 32 << 20

// Handler handles HTTP requests
type Handler struct {
	session *store.Session
	lex     *lexicon.Lexicon
	parser  *parser.Parser
	topN    int
}

// NewHandler creates a new API handler
func NewHandler(session *store.Session, lex *lexicon.Lexicon, p *parser.Parser, topN int) *Handler {
	if topN <= 0 {
		topN = analyzer.DefaultTopN
	}
	return &Handler{
		session: session,
		lex:     lex,
		parser:  p,
		topN:    topN,
	}
}

// HandleHealth handles the /api/health endpoint
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, models.APIResponse{
		Status:  "ok",
		Message: "chatlens is running",
	})
}

// HandleUpload handles POST /api/upload. The multipart field "chat"
// carries the exported text file; a successful upload replaces the
// session corpus.
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		WriteBadRequest(w, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("chat")
	if err != nil {
		WriteBadRequest(w, "missing chat file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		WriteInternalError(w, "failed to read upload")
		return
	}

	// Decode failure is terminal: the pipeline does not run.
	if !utf8.Valid(data) {
		WriteBadRequest(w, "uploaded file is not valid UTF-8 text")
		return
	}

	corpus := models.NewCorpus(h.parser.Parse(string(data)))
	uploadID, uploadedAt := h.session.Replace(header.Filename, corpus)

	log.Info().
		Str("upload_id", uploadID).
		Str("file", header.Filename).
		Int("messages", corpus.Len()).
		Int("users", len(corpus.Senders())).
		Msg("chat export parsed")

	WriteJSON(w, http.StatusOK, models.UploadResponse{
		Status:     "success",
		UploadID:   uploadID,
		FileName:   header.Filename,
		Messages:   corpus.Len(),
		Users:      corpus.Senders(),
		UploadedAt: uploadedAt,
	})
}

// HandleReport handles GET /api/report. Query parameters: user (sender
// name, default ALL) and top (table size, 0 = all items).
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	corpus, ok := h.session.Corpus()
	if !ok {
		WriteNotFound(w, "no chat export uploaded yet")
		return
	}

	user := r.URL.Query().Get("user")
	if user == "" {
		user = models.AllUsers
	}

	topN := h.topN
	if v := r.URL.Query().Get("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			WriteBadRequest(w, "top must be a non-negative integer")
			return
		}
		topN = n
	}

	report := analyzer.BuildReport(corpus, user, topN, h.lex)
	WriteJSON(w, http.StatusOK, report)
}

// HandleGetUsers handles GET /api/users, the sender list for the
// dashboard filter dropdown.
func (h *Handler) HandleGetUsers(w http.ResponseWriter, r *http.Request) {
	corpus, ok := h.session.Corpus()
	if !ok {
		WriteNotFound(w, "no chat export uploaded yet")
		return
	}
	WriteJSON(w, http.StatusOK, models.UsersResponse{Users: corpus.Senders()})
}
