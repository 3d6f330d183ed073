package services

import (
	"fmt"
	"math"

	"github.com/fadhlanhapp/trekshare-backend/models"
	"github.com/fadhlanhapp/trekshare-backend/utils"
)

// Editable itinerary day fields
const (
	FieldTitle         = "title"
	FieldDescription   = "description"
	FieldAltitude      = "altitude"
	FieldDistance      = "distance"
	FieldDuration      = "duration"
	FieldAccommodation = "accommodation"
	FieldMeals         = "meals"
	FieldHighlights    = "highlights"
)

// Itinerary editor operations accepted from clients
const (
	EditInsert  = "insert"
	EditUpdate  = "update"
	EditRemove  = "remove"
	EditReorder = "reorder"
	EditMove    = "move"
)

// ItineraryEditor keeps an ordered list of days numbered 1..n.
// Days are identified by ID; the day number is only their position.
type ItineraryEditor struct {
	days []models.ItineraryDay
}

// NewItineraryEditor starts an editor from an existing day list
func NewItineraryEditor(days []models.ItineraryDay) *ItineraryEditor {
	e := &ItineraryEditor{days: make([]models.ItineraryDay, 0, len(days))}
	for _, d := range days {
		if d.ID == "" {
			d.ID = utils.GenerateID()
		}
		e.days = append(e.days, cloneDay(d))
	}
	e.renumber()
	return e
}

// Days returns a copy of the current list
func (e *ItineraryEditor) Days() []models.ItineraryDay {
	out := make([]models.ItineraryDay, len(e.days))
	for i, d := range e.days {
		out[i] = cloneDay(d)
	}
	return out
}

func (e *ItineraryEditor) Len() int {
	return len(e.days)
}

// InsertAtEnd appends a day and returns it with its assigned ID and number
func (e *ItineraryEditor) InsertAtEnd(day models.ItineraryDay) (models.ItineraryDay, error) {
	if err := validateDay(day); err != nil {
		return models.ItineraryDay{}, err
	}
	if day.ID == "" || e.indexOf(day.ID) >= 0 {
		day.ID = utils.GenerateID()
	}
	if day.Meals == nil {
		day.Meals = []string{}
	}
	if day.Highlights == nil {
		day.Highlights = []string{}
	}
	e.days = append(e.days, cloneDay(day))
	e.renumber()
	return cloneDay(e.days[len(e.days)-1]), nil
}

// UpdateField sets one field of the day at index
func (e *ItineraryEditor) UpdateField(index int, field string, value interface{}) error {
	if err := utils.ValidateIndex(index, len(e.days), "day index"); err != nil {
		return err
	}
	day := &e.days[index]

	switch field {
	case FieldTitle:
		s, err := stringValue(field, value)
		if err != nil {
			return err
		}
		day.Title = s
	case FieldDescription:
		s, err := stringValue(field, value)
		if err != nil {
			return err
		}
		day.Description = s
	case FieldDuration:
		s, err := stringValue(field, value)
		if err != nil {
			return err
		}
		day.Duration = s
	case FieldAccommodation:
		s, err := stringValue(field, value)
		if err != nil {
			return err
		}
		day.Accommodation = s
	case FieldAltitude:
		n, err := intValue(field, value)
		if err != nil {
			return err
		}
		if n < 0 {
			return utils.NewValidationError("altitude cannot be negative")
		}
		day.Altitude = n
	case FieldDistance:
		f, err := floatValue(field, value)
		if err != nil {
			return err
		}
		if err := utils.ValidateNonNegative(f, "distance"); err != nil {
			return err
		}
		day.Distance = f
	case FieldMeals:
		list, err := stringListValue(field, value)
		if err != nil {
			return err
		}
		day.Meals = list
	case FieldHighlights:
		list, err := stringListValue(field, value)
		if err != nil {
			return err
		}
		day.Highlights = list
	default:
		return utils.NewValidationError(fmt.Sprintf("unknown itinerary field %q", field))
	}
	return nil
}

// Remove deletes the day at index
func (e *ItineraryEditor) Remove(index int) error {
	if err := utils.ValidateIndex(index, len(e.days), "day index"); err != nil {
		return err
	}
	e.days = append(e.days[:index], e.days[index+1:]...)
	e.renumber()
	return nil
}

// Reorder moves the day at from so that it ends up at to
func (e *ItineraryEditor) Reorder(from, to int) error {
	if err := utils.ValidateIndex(from, len(e.days), "from index"); err != nil {
		return err
	}
	if err := utils.ValidateIndex(to, len(e.days), "to index"); err != nil {
		return err
	}
	if from == to {
		return nil
	}

	moved := e.days[from]
	e.days = append(e.days[:from], e.days[from+1:]...)
	e.days = append(e.days[:to], append([]models.ItineraryDay{moved}, e.days[to:]...)...)
	e.renumber()
	return nil
}

// MoveByID moves the day with the given ID to position to
func (e *ItineraryEditor) MoveByID(id string, to int) error {
	from := e.indexOf(id)
	if from < 0 {
		return utils.NewNotFoundError("Itinerary day")
	}
	return e.Reorder(from, to)
}

// Apply runs a client edit against the editor
func (e *ItineraryEditor) Apply(edit models.ItineraryEdit) error {
	switch edit.Op {
	case EditInsert:
		day := models.ItineraryDay{}
		if edit.Day != nil {
			day = *edit.Day
		}
		_, err := e.InsertAtEnd(day)
		return err
	case EditUpdate:
		index, err := e.target(edit)
		if err != nil {
			return err
		}
		return e.UpdateField(index, edit.Field, edit.Value)
	case EditRemove:
		index, err := e.target(edit)
		if err != nil {
			return err
		}
		return e.Remove(index)
	case EditReorder:
		return e.Reorder(edit.From, edit.To)
	case EditMove:
		return e.MoveByID(edit.DayID, edit.To)
	default:
		return utils.NewValidationError(fmt.Sprintf("unknown itinerary operation %q", edit.Op))
	}
}

// target resolves the day an edit addresses; dayId wins over index
func (e *ItineraryEditor) target(edit models.ItineraryEdit) (int, error) {
	if edit.DayID != "" {
		index := e.indexOf(edit.DayID)
		if index < 0 {
			return 0, utils.NewNotFoundError("Itinerary day")
		}
		return index, nil
	}
	if edit.Index == nil {
		return 0, utils.NewValidationError(fmt.Sprintf("%s needs an index or a dayId", edit.Op))
	}
	return *edit.Index, nil
}

func (e *ItineraryEditor) indexOf(id string) int {
	for i, d := range e.days {
		if d.ID == id {
			return i
		}
	}
	return -1
}

func (e *ItineraryEditor) renumber() {
	for i := range e.days {
		e.days[i].Day = i + 1
	}
}

// NormalizeItinerary assigns missing IDs and renumbers days from 1
func NormalizeItinerary(days []models.ItineraryDay) ([]models.ItineraryDay, error) {
	for _, d := range days {
		if err := validateDay(d); err != nil {
			return nil, err
		}
	}
	return NewItineraryEditor(days).Days(), nil
}

func validateDay(day models.ItineraryDay) error {
	if day.Altitude < 0 {
		return utils.NewValidationError("altitude cannot be negative")
	}
	return utils.ValidateNonNegative(day.Distance, "distance")
}

func cloneDay(d models.ItineraryDay) models.ItineraryDay {
	d.Meals = append([]string(nil), d.Meals...)
	d.Highlights = append([]string(nil), d.Highlights...)
	if d.Meals == nil {
		d.Meals = []string{}
	}
	if d.Highlights == nil {
		d.Highlights = []string{}
	}
	return d
}

func stringValue(field string, value interface{}) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", utils.NewValidationError(fmt.Sprintf("%s must be text", field))
	}
	return s, nil
}

// intValue accepts Go ints and whole JSON numbers
func intValue(field string, value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, utils.NewValidationError(fmt.Sprintf("%s must be a whole number", field))
		}
		return int(v), nil
	default:
		return 0, utils.NewValidationError(fmt.Sprintf("%s must be a number", field))
	}
}

func floatValue(field string, value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, utils.NewValidationError(fmt.Sprintf("%s must be a number", field))
	}
}

func stringListValue(field string, value interface{}) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return append([]string{}, v...), nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, utils.NewValidationError(fmt.Sprintf("%s must be a list of text", field))
			}
			out = append(out, s)
		}
		return out, nil
	case nil:
		return []string{}, nil
	default:
		return nil, utils.NewValidationError(fmt.Sprintf("%s must be a list of text", field))
	}
}
