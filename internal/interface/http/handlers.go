package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/passit-driving/school-hub/internal/application/command"
	"github.com/passit-driving/school-hub/internal/application/query"
	"github.com/passit-driving/school-hub/internal/domain/instructor"
	"github.com/passit-driving/school-hub/internal/domain/lesson"
	"github.com/passit-driving/school-hub/internal/domain/payment"
	"github.com/passit-driving/school-hub/internal/domain/shared"
	"github.com/passit-driving/school-hub/internal/domain/student"
	"github.com/passit-driving/school-hub/internal/interface/export"
	"github.com/passit-driving/school-hub/pkg/logger"
)

// Handlers holds one application handler per operation plus the logger.
type Handlers struct {
	log *logger.Logger

	enrollStudentCmd      *command.EnrollStudentHandler
	updateStudentCmd      *command.UpdateStudentHandler
	removeStudentCmd      *command.RemoveStudentHandler
	registerInstructorCmd *command.RegisterInstructorHandler
	updateInstructorCmd   *command.UpdateInstructorHandler
	removeInstructorCmd   *command.RemoveInstructorHandler
	bookLessonCmd         *command.BookLessonHandler
	updateLessonCmd       *command.UpdateLessonHandler
	cancelLessonCmd       *command.CancelLessonHandler
	recordPaymentCmd      *command.RecordPaymentHandler
	removePaymentCmd      *command.RemovePaymentHandler

	getStudentQry        *query.GetStudentHandler
	searchStudentsQry    *query.SearchStudentsHandler
	getInstructorQry     *query.GetInstructorHandler
	searchInstructorsQry *query.SearchInstructorsHandler
	getLessonQry         *query.GetLessonHandler
	searchLessonsQry     *query.SearchLessonsHandler
	lessonPriceQry       *query.LessonPriceHandler
	studentProgressQry   *query.StudentProgressHandler
	levelProgressQry     *query.LevelProgressHandler
	summaryQry           *query.GetSummaryHandler
	snapshotQry          *query.GetSnapshotHandler
	listPaymentsQry      *query.ListPaymentsHandler
}

// NewHandlers wires every operation over the given repositories.
// cache may be nil to disable summary caching.
func NewHandlers(
	students student.Repository,
	instructors instructor.Repository,
	lessons lesson.Repository,
	payments payment.Repository,
	cache query.SummaryCache,
	log *logger.Logger,
) *Handlers {
	if log == nil {
		log = logger.Default()
	}

	return &Handlers{
		log: log,

		enrollStudentCmd:      command.NewEnrollStudentHandler(students),
		updateStudentCmd:      command.NewUpdateStudentHandler(students),
		removeStudentCmd:      command.NewRemoveStudentHandler(students),
		registerInstructorCmd: command.NewRegisterInstructorHandler(instructors),
		updateInstructorCmd:   command.NewUpdateInstructorHandler(instructors),
		removeInstructorCmd:   command.NewRemoveInstructorHandler(instructors),
		bookLessonCmd:         command.NewBookLessonHandler(students, instructors, lessons),
		updateLessonCmd:       command.NewUpdateLessonHandler(lessons),
		cancelLessonCmd:       command.NewCancelLessonHandler(lessons),
		recordPaymentCmd:      command.NewRecordPaymentHandler(payments),
		removePaymentCmd:      command.NewRemovePaymentHandler(payments),

		getStudentQry:        query.NewGetStudentHandler(students),
		searchStudentsQry:    query.NewSearchStudentsHandler(students),
		getInstructorQry:     query.NewGetInstructorHandler(instructors),
		searchInstructorsQry: query.NewSearchInstructorsHandler(instructors),
		getLessonQry:         query.NewGetLessonHandler(lessons),
		searchLessonsQry:     query.NewSearchLessonsHandler(lessons),
		lessonPriceQry:       query.NewLessonPriceHandler(),
		studentProgressQry:   query.NewStudentProgressHandler(lessons),
		levelProgressQry:     query.NewLevelProgressHandler(students),
		summaryQry:           query.NewGetSummaryHandler(students, instructors, lessons, cache, log),
		snapshotQry:          query.NewGetSnapshotHandler(students, instructors, lessons),
		listPaymentsQry:      query.NewListPaymentsHandler(payments),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Students
// ─────────────────────────────────────────────────────────────────────────────

type studentPayload struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Progress      string `json:"progress"`
	PaymentStatus string `json:"payment_status"`
}

type studentUpdatePayload struct {
	Name          *string `json:"name"`
	Address       *string `json:"address"`
	Phone         *string `json:"phone"`
	Progress      *string `json:"progress"`
	PaymentStatus *string `json:"payment_status"`
}

func (h *Handlers) enrollStudent(w http.ResponseWriter, r *http.Request) {
	var p studentPayload
	if !h.decode(w, r, &p) {
		return
	}

	res, err := h.enrollStudentCmd.Handle(r.Context(), command.EnrollStudentCommand{
		Name:          p.Name,
		Address:       p.Address,
		Phone:         p.Phone,
		Progress:      p.Progress,
		PaymentStatus: p.PaymentStatus,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]any{"student_id": res.StudentID})
}

func (h *Handlers) searchStudents(w http.ResponseWriter, r *http.Request) {
	refs, err := h.searchStudentsQry.Handle(r.Context(), query.SearchStudentsQuery{
		Name: r.URL.Query().Get("name"),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, refs)
}

func (h *Handlers) getStudent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	s, err := h.getStudentQry.Handle(r.Context(), query.GetStudentQuery{ID: student.ID(id)})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, s)
}

func (h *Handlers) updateStudent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var p studentUpdatePayload
	if !h.decode(w, r, &p) {
		return
	}

	s, err := h.updateStudentCmd.Handle(r.Context(), command.UpdateStudentCommand{
		ID:            student.ID(id),
		Name:          p.Name,
		Address:       p.Address,
		Phone:         p.Phone,
		Progress:      p.Progress,
		PaymentStatus: p.PaymentStatus,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, s)
}

func (h *Handlers) removeStudent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.removeStudentCmd.Handle(r.Context(), command.RemoveStudentCommand{ID: student.ID(id)}); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) studentProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	res, err := h.studentProgressQry.Handle(r.Context(), query.StudentProgressQuery{StudentID: student.ID(id)})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handlers) levelProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	res, err := h.levelProgressQry.Handle(r.Context(), query.LevelProgressQuery{StudentID: student.ID(id)})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handlers) listPayments(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	payments, err := h.listPaymentsQry.Handle(r.Context(), query.ListPaymentsQuery{StudentID: student.ID(id)})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, payments)
}

// ─────────────────────────────────────────────────────────────────────────────
// Instructors
// ─────────────────────────────────────────────────────────────────────────────

type instructorPayload struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Type  string `json:"instructor_type"`
}

type instructorUpdatePayload struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
	Type  *string `json:"instructor_type"`
}

func (h *Handlers) registerInstructor(w http.ResponseWriter, r *http.Request) {
	var p instructorPayload
	if !h.decode(w, r, &p) {
		return
	}

	res, err := h.registerInstructorCmd.Handle(r.Context(), command.RegisterInstructorCommand{
		Name:  p.Name,
		Phone: p.Phone,
		Email: p.Email,
		Type:  p.Type,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]any{"instructor_id": res.InstructorID})
}

func (h *Handlers) searchInstructors(w http.ResponseWriter, r *http.Request) {
	refs, err := h.searchInstructorsQry.Handle(r.Context(), query.SearchInstructorsQuery{
		Name: r.URL.Query().Get("name"),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, refs)
}

func (h *Handlers) getInstructor(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	i, err := h.getInstructorQry.Handle(r.Context(), query.GetInstructorQuery{ID: instructor.ID(id)})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, i)
}

func (h *Handlers) updateInstructor(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var p instructorUpdatePayload
	if !h.decode(w, r, &p) {
		return
	}

	i, err := h.updateInstructorCmd.Handle(r.Context(), command.UpdateInstructorCommand{
		ID:    instructor.ID(id),
		Name:  p.Name,
		Phone: p.Phone,
		Email: p.Email,
		Type:  p.Type,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, i)
}

func (h *Handlers) removeInstructor(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.removeInstructorCmd.Handle(r.Context(), command.RemoveInstructorCommand{ID: instructor.ID(id)}); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ─────────────────────────────────────────────────────────────────────────────
// Lessons
// ─────────────────────────────────────────────────────────────────────────────

type bookLessonPayload struct {
	StudentID            int64  `json:"student_id"`
	InstructorID         int64  `json:"instructor_id"`
	Type                 string `json:"lesson_type"`
	Date                 string `json:"date"`
	Status               string `json:"status"`
	PassPlusAcknowledged bool   `json:"pass_plus_acknowledged"`
}

type lessonUpdatePayload struct {
	Date   *string `json:"date"`
	Status *string `json:"status"`
}

func (h *Handlers) bookLesson(w http.ResponseWriter, r *http.Request) {
	var p bookLessonPayload
	if !h.decode(w, r, &p) {
		return
	}

	res, err := h.bookLessonCmd.Handle(r.Context(), command.BookLessonCommand{
		StudentID:            student.ID(p.StudentID),
		InstructorID:         instructor.ID(p.InstructorID),
		Type:                 p.Type,
		Date:                 p.Date,
		Status:               p.Status,
		PassPlusAcknowledged: p.PassPlusAcknowledged,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]any{
		"lesson_id": res.LessonID,
		"price":     res.Price,
	})
}

func (h *Handlers) searchLessons(w http.ResponseWriter, r *http.Request) {
	lessons, err := h.searchLessonsQry.Handle(r.Context(), query.SearchLessonsQuery{
		StudentID: r.URL.Query().Get("student"),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, lessons)
}

func (h *Handlers) lessonPrice(w http.ResponseWriter, r *http.Request) {
	res, err := h.lessonPriceQry.Handle(r.Context(), query.LessonPriceQuery{
		Type: r.URL.Query().Get("type"),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handlers) getLesson(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	l, err := h.getLessonQry.Handle(r.Context(), query.GetLessonQuery{ID: lesson.ID(id)})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, l)
}

func (h *Handlers) updateLesson(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var p lessonUpdatePayload
	if !h.decode(w, r, &p) {
		return
	}

	l, err := h.updateLessonCmd.Handle(r.Context(), command.UpdateLessonCommand{
		ID:     lesson.ID(id),
		Date:   p.Date,
		Status: p.Status,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, l)
}

func (h *Handlers) cancelLesson(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.cancelLessonCmd.Handle(r.Context(), command.CancelLessonCommand{ID: lesson.ID(id)}); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ─────────────────────────────────────────────────────────────────────────────
// Payments
// ─────────────────────────────────────────────────────────────────────────────

type paymentPayload struct {
	StudentID  int64  `json:"student_id"`
	Amount     int    `json:"amount"`
	LessonType string `json:"lesson_type"`
	Date       string `json:"payment_date"`
}

func (h *Handlers) recordPayment(w http.ResponseWriter, r *http.Request) {
	var p paymentPayload
	if !h.decode(w, r, &p) {
		return
	}

	res, err := h.recordPaymentCmd.Handle(r.Context(), command.RecordPaymentCommand{
		StudentID:  student.ID(p.StudentID),
		Amount:     p.Amount,
		LessonType: p.LessonType,
		Date:       p.Date,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]any{
		"payment_id": res.PaymentID,
		"amount":     res.Amount,
	})
}

func (h *Handlers) removePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.removePaymentCmd.Handle(r.Context(), command.RemovePaymentCommand{ID: payment.ID(id)}); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ─────────────────────────────────────────────────────────────────────────────
// Reports
// ─────────────────────────────────────────────────────────────────────────────

func (h *Handlers) summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.summaryQry.Handle(r.Context(), query.GetSummaryQuery{
		BypassCache: r.URL.Query().Get("fresh") == "true",
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, s)
}

func (h *Handlers) snapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.snapshotQry.Handle(r.Context(), query.GetSnapshotQuery{})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, snap)
}

func (h *Handlers) exportDocument(w http.ResponseWriter, r *http.Request) {
	snap, err := h.snapshotQry.Handle(r.Context(), query.GetSnapshotQuery{})
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := export.Render(w, snap); err != nil {
		h.log.Error("export rendering failed", logger.Err(err))
	}
}

func (h *Handlers) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

// pathID parses the {id} path segment.
func (h *Handlers) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// decode reads the JSON request body into v.
func (h *Handlers) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return false
	}
	return true
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("response encoding failed", logger.Err(err))
	}
}

// writeError maps the error taxonomy onto status codes. Internal detail
// never leaks past the boundary for store failures.
func (h *Handlers) writeError(w http.ResponseWriter, err error) {
	switch {
	case shared.IsNotFound(err):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case shared.IsValidation(err):
		h.writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	case shared.IsInvalidFormat(err):
		h.writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	default:
		h.log.Error("operation failed", logger.Err(err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
