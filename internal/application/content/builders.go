package content

import (
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/jhoicas/museum-portal/internal/domain"
	"github.com/jhoicas/museum-portal/internal/domain/entity"
)

// htmlSanitizer política UGC para el contenido HTML de las noticias.
var htmlSanitizer = bluemonday.UGCPolicy()

// BuildCollection valida el draft y construye la entidad con sus defaults.
func BuildCollection(d Draft) (*entity.Collection, error) {
	if err := Validate(d, KindCollection); err != nil {
		return nil, err
	}
	status := d.Get("status")
	if status == "" {
		status = "active"
	}
	return &entity.Collection{
		Title:       d.Get("title"),
		Description: d.Get("description"),
		Category:    d.Get("category"),
		Period:      d.Get("period"),
		Origin:      d.Get("origin"),
		Material:    d.Get("material"),
		Image:       d.Image,
		Status:      status,
		CreatedAt:   time.Now(),
	}, nil
}

// BuildExhibition valida el draft, verifica el tipo y parsea las fechas.
func BuildExhibition(d Draft) (*entity.Exhibition, error) {
	if err := Validate(d, KindExhibition); err != nil {
		return nil, err
	}
	if !entity.ValidExhibitionType(d.Get("type")) {
		return nil, &domain.ValidationError{
			Messages: []string{"type debe ser Permanent, Temporary o Special"},
		}
	}
	start, err := ParseDate("startDate", d.Get("startDate"))
	if err != nil {
		return nil, err
	}
	var end *time.Time
	if d.Has("endDate") {
		t, err := ParseDate("endDate", d.Get("endDate"))
		if err != nil {
			return nil, err
		}
		end = &t
	}
	status := d.Get("status")
	if status == "" {
		status = "upcoming"
	}
	return &entity.Exhibition{
		Title:       d.Get("title"),
		Description: d.Get("description"),
		Type:        d.Get("type"),
		StartDate:   start,
		EndDate:     end,
		Status:      status,
		Location:    d.Get("location"),
		Image:       d.Image,
		CreatedAt:   time.Now(),
	}, nil
}

// BuildEvent valida el draft y normaliza la fecha a su forma canónica.
func BuildEvent(d Draft) (*entity.Event, error) {
	if err := Validate(d, KindEvent); err != nil {
		return nil, err
	}
	date, err := ParseDate("date", d.Get("date"))
	if err != nil {
		return nil, err
	}
	status := d.Get("status")
	if status == "" {
		status = "upcoming"
	}
	return &entity.Event{
		Title:       d.Get("title"),
		Description: d.Get("description"),
		Date:        date,
		Time:        d.Get("time"),
		Location:    d.Get("location"),
		Category:    d.Get("category"),
		Image:       d.Image,
		Status:      status,
		CreatedAt:   time.Now(),
	}, nil
}

// BuildNews valida el draft y sanitiza el contenido HTML antes de persistir.
func BuildNews(d Draft) (*entity.News, error) {
	if err := Validate(d, KindNews); err != nil {
		return nil, err
	}
	status := d.Get("status")
	if status == "" {
		status = "published"
	}
	return &entity.News{
		Title:       d.Get("title"),
		Excerpt:     d.Get("excerpt"),
		Content:     htmlSanitizer.Sanitize(d.Get("content")),
		Image:       d.Image,
		Status:      status,
		PublishDate: time.Now(),
	}, nil
}
