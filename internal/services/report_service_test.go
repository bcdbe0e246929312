package services_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"agenda_backend/internal/models"
	"agenda_backend/internal/services"
)

func TestExportAppointmentsCSV(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := services.NewReportService(repo)

	message := "Trazer documentos"
	_, err := repo.CreateAppointment(nil, &models.Appointment{
		ClientName: "Maria Silva",
		Phone:      "11999990000",
		Email:      "maria@example.com",
		Date:       mustDate(t, "2026-09-15"),
		Time:       "14:00",
		Message:    &message,
	})
	if err != nil {
		t.Fatal(err)
	}
	_, err = repo.CreateAppointment(nil, &models.Appointment{
		ClientName: "João Souza",
		Phone:      "11888880000",
		Email:      "joao@example.com",
		Date:       mustDate(t, "2026-10-01"),
		Time:       "09:30",
	})
	if err != nil {
		t.Fatal(err)
	}

	data, err := svc.ExportAppointmentsCSV()
	if err != nil {
		t.Fatalf("ExportAppointmentsCSV returned error: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parsing CSV output: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("record count = %d, want header + 2 rows", len(records))
	}

	header := records[0]
	wantHeader := []string{"Cliente", "Data", "Horario", "Mensagem"}
	for i := range wantHeader {
		if header[i] != wantHeader[i] {
			t.Errorf("header[%d] = %s, want %s", i, header[i], wantHeader[i])
		}
	}

	first := records[1]
	if first[0] != "Maria Silva" || first[1] != "15/09/2026" || first[2] != "14:00" || first[3] != "Trazer documentos" {
		t.Errorf("row 1 = %v", first)
	}

	second := records[2]
	if second[1] != "01/10/2026" {
		t.Errorf("row 2 date = %s, want 01/10/2026", second[1])
	}
	if second[3] != "" {
		t.Errorf("row 2 message = %q, want empty for nil message", second[3])
	}
}

func TestExportAppointmentsCSVEmpty(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := services.NewReportService(repo)

	data, err := svc.ExportAppointmentsCSV()
	if err != nil {
		t.Fatalf("ExportAppointmentsCSV returned error: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parsing CSV output: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("record count = %d, want header only", len(records))
	}
}
