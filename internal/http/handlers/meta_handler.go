package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// MetaHandler serves the option lists the campaign form renders.
type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

type MetaOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var objectiveOptions = []MetaOption{
	{ID: "awareness", Label: "Brand Awareness"},
	{ID: "traffic", Label: "Website Traffic"},
	{ID: "engagement", Label: "Engagement"},
	{ID: "leads", Label: "Lead Generation"},
	{ID: "sales", Label: "Sales"},
	{ID: "retention", Label: "Customer Retention"},
}

var ageRangeOptions = []MetaOption{
	{ID: "18-24", Label: "18-24"},
	{ID: "25-34", Label: "25-34"},
	{ID: "25-45", Label: "25-45"},
	{ID: "35-44", Label: "35-44"},
	{ID: "45-54", Label: "45-54"},
	{ID: "55+", Label: "55+"},
}

var genderOptions = []MetaOption{
	{ID: "all", Label: "All"},
	{ID: "male", Label: "Male"},
	{ID: "female", Label: "Female"},
}

var channelOptions = []MetaOption{
	{ID: "social", Label: "Social Media"},
	{ID: "email", Label: "Email"},
	{ID: "search", Label: "Search Ads"},
	{ID: "display", Label: "Display"},
}

func (h *MetaHandler) GetObjectives(c *fiber.Ctx) error {
	return c.JSON(objectiveOptions)
}

func (h *MetaHandler) GetAgeRanges(c *fiber.Ctx) error {
	return c.JSON(ageRangeOptions)
}

func (h *MetaHandler) GetGenders(c *fiber.Ctx) error {
	return c.JSON(genderOptions)
}

func (h *MetaHandler) GetChannels(c *fiber.Ctx) error {
	return c.JSON(channelOptions)
}
