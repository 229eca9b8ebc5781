package models

// Service is a static catalog entry. Bookings reference services by
// display name, not by ID, so names here are effectively part of the API.
type Service struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"` // whole currency units
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Icon        string `json:"icon"`
}

var Services = []Service{
	{
		ID:          "s1",
		Name:        "Classic Haircut",
		Price:       25,
		Description: "Precision cut tailored to your head shape and style preferences.",
		Duration:    "45 mins",
		Icon:        "Scissors",
	},
	{
		ID:          "s2",
		Name:        "Beard Styling",
		Price:       15,
		Description: "Detailed shaping and grooming of your facial hair with hot towel finish.",
		Duration:    "30 mins",
		Icon:        "User",
	},
	{
		ID:          "s3",
		Name:        "Hair Coloring",
		Price:       45,
		Description: "Professional coloring to cover greys or change your look completely.",
		Duration:    "90 mins",
		Icon:        "Palette",
	},
	{
		ID:          "s4",
		Name:        "Luxury Facial",
		Price:       35,
		Description: "Deep cleansing and rejuvenation for a fresh, healthy glow.",
		Duration:    "40 mins",
		Icon:        "Sparkles",
	},
	{
		ID:          "s5",
		Name:        "Head Massage",
		Price:       20,
		Description: "Relaxing pressure point massage to relieve stress and tension.",
		Duration:    "20 mins",
		Icon:        "Smile",
	},
}
