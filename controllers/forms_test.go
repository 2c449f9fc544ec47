package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func formContext(t *testing.T, target string, form url.Values) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req
	return c
}

func TestParseReservationFormDates(t *testing.T) {
	now := time.Date(2030, 6, 1, 23, 30, 0, 0, time.Local)

	tests := []struct {
		name      string
		checkIn   string
		checkOut  string
		wantField string
	}{
		{name: "check-in today", checkIn: "2030-06-01", checkOut: "2030-06-02"},
		{name: "check-in yesterday", checkIn: "2030-05-31", checkOut: "2030-06-02", wantField: "data_checkin"},
		{name: "same day", checkIn: "2030-06-05", checkOut: "2030-06-05", wantField: "data_checkout"},
		{name: "check-out first", checkIn: "2030-06-05", checkOut: "2030-06-04", wantField: "data_checkout"},
		{name: "not a date", checkIn: "2030-6-5", checkOut: "2030-06-06", wantField: "data_checkin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := formContext(t, "/reservas", url.Values{
				"quarto_id":      {"1"},
				"cliente_id":     {"2"},
				"data_checkin":   {tt.checkIn},
				"data_checkout":  {tt.checkOut},
				"numero_pessoas": {"2"},
			})

			in, err := parseReservationForm(c, now)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if in.RoomID != 1 || in.CustomerID != 2 || in.PartySize != 2 || in.CheckIn != tt.checkIn {
					t.Errorf("input = %+v", in)
				}
				return
			}

			fe := IsFormError(err)
			if fe == nil {
				t.Fatalf("err = %v, want a FormError", err)
			}
			if len(fe.Fields()[tt.wantField]) == 0 {
				t.Errorf("fields = %v, want %s", fe.Fields(), tt.wantField)
			}
		})
	}
}

func TestParseRoomCreateFormVacantDefault(t *testing.T) {
	c := formContext(t, "/quartos", url.Values{
		"numero":            {"101"},
		"capacidade_maxima": {"2"},
		"valor_diaria":      {"199.90"},
	})
	room, err := parseRoomCreateForm(c)
	if err != nil {
		t.Fatalf("parseRoomCreateForm: %v", err)
	}
	if !room.Vacant || room.Number != 101 || room.NightlyRate != 199.90 {
		t.Errorf("room = %+v", room)
	}

	c = formContext(t, "/quartos", url.Values{
		"numero":            {"102"},
		"capacidade_maxima": {"2"},
		"valor_diaria":      {"199.90"},
		"vago":              {"false"},
	})
	room, err = parseRoomCreateForm(c)
	if err != nil {
		t.Fatalf("parseRoomCreateForm: %v", err)
	}
	if room.Vacant {
		t.Error("vago=false was ignored")
	}
}

func TestParseIDRequired(t *testing.T) {
	c := formContext(t, "/quartos", url.Values{})
	if _, err := parseID(c); IsFormError(err) == nil {
		t.Fatalf("err = %v, want a FormError", err)
	}

	c = formContext(t, "/quartos?id=7", url.Values{})
	id, err := parseID(c)
	if err != nil || id != 7 {
		t.Fatalf("parseID = %d, %v", id, err)
	}
}

func TestFormErrorMessage(t *testing.T) {
	fe := newFormError()
	fe.add("nome", "deve conter apenas letras")
	fe.add("celular", "campo obrigatório")
	fe.add("celular", "deve conter exatamente 11 dígitos")

	want := "celular: campo obrigatório; deve conter exatamente 11 dígitos, nome: deve conter apenas letras"
	if got := fe.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func jsonContext(t *testing.T, target, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c
}

func TestBindingErrorsHideDecoderDetails(t *testing.T) {
	tests := []struct {
		name      string
		ctx       func(t *testing.T) *gin.Context
		wantField string
		wantMsg   string
	}{
		{
			name: "form number",
			ctx: func(t *testing.T) *gin.Context {
				return formContext(t, "/quartos", url.Values{"numero": {"abc"}, "capacidade_maxima": {"2"}, "valor_diaria": {"100"}})
			},
			wantField: "numero",
			wantMsg:   "deve ser um número",
		},
		{
			name: "form boolean",
			ctx: func(t *testing.T) *gin.Context {
				return formContext(t, "/quartos", url.Values{"numero": {"101"}, "capacidade_maxima": {"2"}, "valor_diaria": {"100"}, "vago": {"talvez"}})
			},
			wantField: "vago",
			wantMsg:   "deve ser true ou false",
		},
		{
			name: "json wrong type",
			ctx: func(t *testing.T) *gin.Context {
				return jsonContext(t, "/quartos", `{"numero":"101","capacidade_maxima":2,"valor_diaria":100}`)
			},
			wantField: "numero",
			wantMsg:   "tipo de valor inválido",
		},
		{
			name: "json syntax",
			ctx: func(t *testing.T) *gin.Context {
				return jsonContext(t, "/quartos", `{"numero":`)
			},
			wantField: "body",
			wantMsg:   "formato inválido",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseRoomCreateForm(tt.ctx(t))
			fe := IsFormError(err)
			if fe == nil {
				t.Fatalf("err = %v, want a FormError", err)
			}
			msgs := fe.Fields()[tt.wantField]
			if len(msgs) != 1 || msgs[0] != tt.wantMsg {
				t.Errorf("fields = %v, want %s: [%s]", fe.Fields(), tt.wantField, tt.wantMsg)
			}
			for _, leak := range []string{"strconv", "json:", "Go struct"} {
				if strings.Contains(fe.Error(), leak) {
					t.Errorf("message %q exposes %q", fe.Error(), leak)
				}
			}
		})
	}
}

func TestParseIDNotANumber(t *testing.T) {
	c := formContext(t, "/quartos?id=abc", url.Values{})
	_, err := parseID(c)
	fe := IsFormError(err)
	if fe == nil || len(fe.Fields()["id"]) == 0 {
		t.Fatalf("err = %v, want a FormError on id", err)
	}
}
