package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"agenda_backend/internal/handlers"
	"agenda_backend/internal/models"
	"agenda_backend/internal/services"
	"agenda_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// stubAppointmentService returns canned values for handler tests.
type stubAppointmentService struct {
	created          *services.CreateAppointmentRequest
	createErr        error
	appointments     []models.Appointment
	listErr          error
	deleteErr        error
	unavailableTimes []string
	unavailableErr   error
}

func (s *stubAppointmentService) CreateAppointment(req services.CreateAppointmentRequest) (*models.Appointment, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = &req
	return &models.Appointment{ID: 1, ClientName: req.Name}, nil
}

func (s *stubAppointmentService) GetAppointments(dateFilter string) ([]models.Appointment, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.appointments, nil
}

func (s *stubAppointmentService) DeleteAppointment(id int64) error {
	return s.deleteErr
}

func (s *stubAppointmentService) GetUnavailableTimes(date string) ([]string, error) {
	if s.unavailableErr != nil {
		return nil, s.unavailableErr
	}
	return s.unavailableTimes, nil
}

func newAppointmentRouter(t *testing.T, stub *stubAppointmentService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := handlers.NewAppointmentHandler(stub)
	router := gin.New()
	router.GET("/", handler.ShowBookingForm)
	router.POST("/agendar", handler.CreateAppointment)
	router.GET("/agendamentos", handler.GetAppointments)
	router.GET("/deletar/:id", handler.DeleteAppointment)
	router.GET("/horarios_indisponiveis", handler.GetUnavailableTimes)
	return router
}

func flashFromResponse(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == utils.FlashCookieName && cookie.MaxAge > 0 {
			decoded, err := url.QueryUnescape(cookie.Value)
			if err != nil {
				t.Fatalf("decoding flash cookie: %v", err)
			}
			return decoded
		}
	}
	return ""
}

func TestCreateAppointmentRedirectsWithSuccessFlash(t *testing.T) {
	stub := &stubAppointmentService{}
	router := newAppointmentRouter(t, stub)

	form := url.Values{}
	form.Set("nome", "Maria Silva")
	form.Set("telefone", "11999990000")
	form.Set("email", "maria@example.com")
	form.Set("data", "2026-09-15")
	form.Set("horario", "14:00")
	form.Set("mensagem", "Primeira consulta")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/agendar", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if location := w.Header().Get("Location"); location != "/" {
		t.Errorf("redirect location = %s, want /", location)
	}
	if flash := flashFromResponse(t, w); flash != "success|Agendamento realizado com sucesso!" {
		t.Errorf("flash = %q", flash)
	}
	if stub.created == nil || stub.created.Name != "Maria Silva" {
		t.Errorf("service did not receive form data: %+v", stub.created)
	}
}

func TestCreateAppointmentMissingFields(t *testing.T) {
	stub := &stubAppointmentService{}
	router := newAppointmentRouter(t, stub)

	form := url.Values{}
	form.Set("nome", "Maria")
	// telefone, email, data, horario omitted

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/agendar", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if flash := flashFromResponse(t, w); !strings.HasPrefix(flash, "danger|") {
		t.Errorf("flash = %q, want danger level", flash)
	}
	if stub.created != nil {
		t.Error("service called despite failed binding")
	}
}

func TestGetUnavailableTimes(t *testing.T) {
	stub := &stubAppointmentService{unavailableTimes: []string{"09:00", "10:00"}}
	router := newAppointmentRouter(t, stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/horarios_indisponiveis?data=2026-09-15", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body struct {
		Horarios []string `json:"horarios_indisponiveis"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(body.Horarios) != 2 || body.Horarios[0] != "09:00" {
		t.Errorf("horarios = %v, want [09:00 10:00]", body.Horarios)
	}
}

func TestGetUnavailableTimesBadDate(t *testing.T) {
	stub := &stubAppointmentService{unavailableErr: services.ErrInvalidDate}
	router := newAppointmentRouter(t, stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/horarios_indisponiveis?data=bogus", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestDeleteAppointmentNotFoundFlash(t *testing.T) {
	stub := &stubAppointmentService{deleteErr: services.ErrAppointmentNotFound}
	router := newAppointmentRouter(t, stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/deletar/42", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if location := w.Header().Get("Location"); location != "/agendamentos" {
		t.Errorf("redirect location = %s, want /agendamentos", location)
	}
	if flash := flashFromResponse(t, w); flash != "danger|Agendamento não encontrado." {
		t.Errorf("flash = %q", flash)
	}
}

func TestGetAppointmentsResponseShape(t *testing.T) {
	stub := &stubAppointmentService{appointments: []models.Appointment{
		{ID: 1, ClientName: "Maria"},
	}}
	router := newAppointmentRouter(t, stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/agendamentos", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body struct {
		Data []models.Appointment `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(body.Data) != 1 || body.Data[0].ClientName != "Maria" {
		t.Errorf("data = %+v", body.Data)
	}
}
