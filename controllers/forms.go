package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"hotel-reservas/models"
	"hotel-reservas/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type idQuery struct {
	ID uint `form:"id" binding:"required"`
}

type roomCreateForm struct {
	Number      int     `form:"numero" json:"numero" binding:"required,min=1,max=5000"`
	MaxCapacity int     `form:"capacidade_maxima" json:"capacidade_maxima" binding:"required,min=1,max=6"`
	NightlyRate float64 `form:"valor_diaria" json:"valor_diaria" binding:"required,gt=0,lte=2000"`
	Vacant      *bool   `form:"vago" json:"vago"` // defaults to true
}

type roomEditForm struct {
	MaxCapacity int     `form:"capacidade_maxima" json:"capacidade_maxima" binding:"required,min=1,max=6"`
	NightlyRate float64 `form:"valor_diaria" json:"valor_diaria" binding:"required,gt=0,lte=2000"`
}

type customerForm struct {
	FirstName string `form:"nome" json:"nome" binding:"required,alpha"`
	LastName  string `form:"sobrenome" json:"sobrenome" binding:"required,alpha"`
	Phone     string `form:"celular" json:"celular" binding:"required,celular"`
	Email     string `form:"email" json:"email" binding:"required,email"`
}

type reservationForm struct {
	RoomID     uint   `form:"quarto_id" json:"quarto_id" binding:"required"`
	CustomerID uint   `form:"cliente_id" json:"cliente_id" binding:"required"`
	CheckIn    string `form:"data_checkin" json:"data_checkin" binding:"required,datetime=2006-01-02"`
	CheckOut   string `form:"data_checkout" json:"data_checkout" binding:"required,datetime=2006-01-02"`
	PartySize  int    `form:"numero_pessoas" json:"numero_pessoas" binding:"required,min=1,max=4"`
}

// ---------------------------
// FormError
// ---------------------------

// FormError lists validation messages per request field.
type FormError struct {
	fields map[string][]string
}

func newFormError() *FormError {
	return &FormError{fields: make(map[string][]string)}
}

func (e *FormError) add(field, msg string) {
	e.fields[field] = append(e.fields[field], msg)
}

func (e *FormError) empty() bool {
	return len(e.fields) == 0
}

func (e *FormError) Fields() map[string][]string {
	return e.fields
}

func (e *FormError) Error() string {
	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.fields[k], "; ")))
	}
	return strings.Join(parts, ", ")
}

// IsFormError returns the FormError wrapped in err, or nil.
func IsFormError(err error) *FormError {
	var fe *FormError
	if errors.As(err, &fe) {
		return fe
	}
	return nil
}

// ---------------------------
// Validator setup
// ---------------------------

var (
	celularPattern = regexp.MustCompile(`^[0-9]{11}$`)
	validatorsOnce sync.Once
)

// registerValidators reports fields by their form name and adds the "celular" rule
// to gin's validator engine.
func registerValidators() {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("celular", func(fl validator.FieldLevel) bool {
			return celularPattern.MatchString(fl.Field().String())
		})
	})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "min":
		return fmt.Sprintf("deve ser no mínimo %s", fe.Param())
	case "max":
		return fmt.Sprintf("deve ser no máximo %s", fe.Param())
	case "gt":
		return fmt.Sprintf("deve ser maior que %s", fe.Param())
	case "lte":
		return fmt.Sprintf("não pode exceder %s", fe.Param())
	case "alpha":
		return "deve conter apenas letras"
	case "celular":
		return "deve conter exatamente 11 dígitos"
	case "email":
		return "email inválido"
	case "datetime":
		return "O formato da data deve ser YYYY-MM-DD"
	}
	return fmt.Sprintf("inválido (%s)", fe.Tag())
}

// toFormError turns a binding failure into per-field messages. Decoder errors
// never reach the client verbatim; values is searched to name the field a
// number or boolean failed to parse from.
func toFormError(err error, values url.Values) *FormError {
	fe := newFormError()

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, v := range verrs {
			fe.add(v.Field(), validationMessage(v))
		}
		return fe
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		fe.add(typeErr.Field, "tipo de valor inválido")
		return fe
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		msg := "deve ser um número"
		if numErr.Func == "ParseBool" {
			msg = "deve ser true ou false"
		}
		fe.add(fieldWithValue(values, numErr.Num), msg)
		return fe
	}

	fe.add("body", "formato inválido")
	return fe
}

func fieldWithValue(values url.Values, value string) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range values[k] {
			if v == value {
				return k
			}
		}
	}
	return "body"
}

// ---------------------------
// Parsers: transport -> typed input, before any business logic
// ---------------------------

func bindForm(c *gin.Context, obj any) error {
	registerValidators()
	if err := c.ShouldBind(obj); err != nil {
		return toFormError(err, c.Request.Form)
	}
	return nil
}

func parseID(c *gin.Context) (uint, error) {
	registerValidators()
	var q idQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return 0, toFormError(err, c.Request.URL.Query())
	}
	return q.ID, nil
}

func parseRoomCreateForm(c *gin.Context) (models.Room, error) {
	var f roomCreateForm
	if err := bindForm(c, &f); err != nil {
		return models.Room{}, err
	}

	vacant := true
	if f.Vacant != nil {
		vacant = *f.Vacant
	}
	return models.Room{
		Number:      f.Number,
		MaxCapacity: f.MaxCapacity,
		NightlyRate: f.NightlyRate,
		Vacant:      vacant,
	}, nil
}

func parseRoomEditForm(c *gin.Context) (roomEditForm, error) {
	var f roomEditForm
	if err := bindForm(c, &f); err != nil {
		return roomEditForm{}, err
	}
	return f, nil
}

func parseCustomerForm(c *gin.Context) (models.Customer, error) {
	var f customerForm
	if err := bindForm(c, &f); err != nil {
		return models.Customer{}, err
	}
	return models.Customer{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Phone:     f.Phone,
		Email:     f.Email,
	}, nil
}

// parseReservationForm also requires check-in on or after today and check-out after check-in.
func parseReservationForm(c *gin.Context, now time.Time) (services.ReservationInput, error) {
	var f reservationForm
	if err := bindForm(c, &f); err != nil {
		return services.ReservationInput{}, err
	}

	fe := newFormError()
	checkIn, _ := time.Parse(models.DateLayout, f.CheckIn)
	checkOut, _ := time.Parse(models.DateLayout, f.CheckOut)

	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if checkIn.Before(today) {
		fe.add("data_checkin", "A data de check-in não pode ser no passado")
	}
	if !checkOut.After(checkIn) {
		fe.add("data_checkout", "A data de check-out deve ser posterior à data de check-in")
	}
	if !fe.empty() {
		return services.ReservationInput{}, fe
	}

	return services.ReservationInput{
		RoomID:     f.RoomID,
		CustomerID: f.CustomerID,
		CheckIn:    f.CheckIn,
		CheckOut:   f.CheckOut,
		PartySize:  f.PartySize,
	}, nil
}
