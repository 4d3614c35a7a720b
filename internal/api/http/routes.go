package httpapi

import (
	"bytes"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/lingtangg/weather-summary/internal/store"
	"github.com/lingtangg/weather-summary/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/datasets", func(c *fiber.Ctx) error {
		all := service.List()
		views := make([]datasetView, 0, len(all))
		for _, ds := range all {
			views = append(views, toView(ds))
		}
		return c.JSON(fiber.Map{"datasets": views})
	})

	v1.Post("/datasets", func(c *fiber.Ctx) error {
		ds, err := service.Ingest(c.Query("name"), bytes.NewReader(c.Body()))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(toView(ds))
	})

	v1.Get("/datasets/:id", func(c *fiber.Ctx) error {
		ds, err := service.Get(c.Params("id"))
		if err != nil {
			return storeError(err)
		}
		return c.JSON(toView(ds))
	})

	v1.Delete("/datasets/:id", func(c *fiber.Ctx) error {
		if err := service.Delete(c.Params("id")); err != nil {
			return storeError(err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	v1.Get("/datasets/:id/summary", func(c *fiber.Ctx) error {
		q := summaryQuery{View: c.Query("view", viewFull)}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		var (
			out string
			err error
		)
		id := c.Params("id")
		switch q.View {
		case viewOverview:
			out, err = service.Overview(id)
		case viewDaily:
			out, err = service.Daily(id)
		default:
			out, err = service.Report(id)
		}
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return storeError(err)
			}
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(out)
	})
}

// ErrorHandler renders every error as a JSON body.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": err.Error(),
	})
}

func storeError(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "no dataset with the requested id")
	}
	return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch dataset")
}

const (
	viewOverview = "overview"
	viewDaily    = "daily"
	viewFull     = "full"
)

// summaryQuery holds query parameters for the summary endpoint.
type summaryQuery struct {
	View string `validate:"required,oneof=overview daily full"`
}

// datasetView is the JSON shape of a stored dataset.
type datasetView struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loadedAt"`
	Days     int       `json:"days"`
}

func toView(ds weather.StoredDataset) datasetView {
	return datasetView{
		ID:       ds.ID,
		Name:     ds.Name,
		Source:   ds.Source,
		LoadedAt: ds.LoadedAt,
		Days:     ds.Days(),
	}
}
