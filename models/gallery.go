package models

type GalleryItem struct {
	ID    int    `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

var GalleryItems = []GalleryItem{
	{ID: 1, URL: "https://images.unsplash.com/photo-1585747860715-2ba37e788b70?auto=format&fit=crop&q=80&w=800", Title: "Modern Fade"},
	{ID: 2, URL: "https://images.unsplash.com/photo-1621605815841-aa33c6ceb02c?auto=format&fit=crop&q=80&w=800", Title: "Textured Crop"},
	{ID: 3, URL: "https://images.unsplash.com/photo-1599351431247-f10b218163e3?auto=format&fit=crop&q=80&w=800", Title: "Executive Contour"},
	{ID: 4, URL: "https://images.unsplash.com/photo-1503951914875-452162b0f3f1?auto=format&fit=crop&q=80&w=800", Title: "Beard Perfection"},
	{ID: 5, URL: "https://images.unsplash.com/photo-1605497788044-5a32c7078486?auto=format&fit=crop&q=80&w=800", Title: "Classic Side Part"},
	{ID: 6, URL: "https://images.unsplash.com/photo-1592647425447-181099a8975c?auto=format&fit=crop&q=80&w=800", Title: "Viking Style"},
}

// ContactInfo is the shop's public contact card, served as-is to the site.
type ContactInfo struct {
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Hours    string `json:"hours"`
}

var Contact = ContactInfo{
	Phone:    "+919306155980",
	WhatsApp: "+919306155980",
	Email:    "contact@ajjubhaibarber.com",
	Address:  "123 Luxury Lane, Royal Street, Mumbai, India",
	Hours:    "Mon - Sun: 09:00 AM - 09:00 PM",
}
