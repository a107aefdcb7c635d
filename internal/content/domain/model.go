package domain

import "time"

// Bhajan is a single devotional song/verse entry. Lyrics and most display
// fields are Devanagari text; Subcategory is a controlled vocabulary drawn
// from the labels collection.
type Bhajan struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Subcategory []string  `json:"subcategory,omitempty"`
	Lyrics      string    `json:"lyrics"`
	Sant        string    `json:"sant,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

type Sant struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	BirthPlace  string    `json:"birthPlace,omitempty"`
	Era         string    `json:"era,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// BhajanType is the top level of the two-level classification; Category
// belongs to exactly one BhajanType via BhajanTypeID.
type BhajanType struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

type Category struct {
	ID           string    `json:"id,omitempty"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	BhajanTypeID string    `json:"bhajanTypeId"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
}

type Label struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// Event date is a plain YYYY-MM-DD string; Time is free text as entered by
// the admin ("सकाळी ७ वाजता" etc).
type Event struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Time        string    `json:"time,omitempty"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// Member.Order defines the manual display ordering; reordering rewrites the
// Order field of every member whose position changed.
type Member struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Skill     string    `json:"skill,omitempty"`
	Position  string    `json:"position,omitempty"`
	PhotoURL  string    `json:"photoUrl,omitempty"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// AppSettings is a singleton document, read-modify-written with merge
// semantics.
type AppSettings struct {
	ID                 string `json:"id,omitempty"`
	AppName            string `json:"appName"`
	AppTitle           string `json:"appTitle"`
	AppSubtitle        string `json:"appSubtitle"`
	AppDescription     string `json:"appDescription"`
	SplashText         string `json:"splashText"`
	LoginMessage       string `json:"loginMessage"`
	PrimaryColor       string `json:"primaryColor"`
	FaviconURL         string `json:"faviconUrl"`
	AppIcon192         string `json:"appIcon192"`
	AppIcon512         string `json:"appIcon512"`
	AboutTitle         string `json:"aboutTitle"`
	AboutDescription   string `json:"aboutDescription"`
	ContactPhone       string `json:"contactPhone"`
	ContactEmail       string `json:"contactEmail"`
	FacebookURL        string `json:"facebookUrl"`
	InstagramURL       string `json:"instagramUrl"`
	YoutubeURL         string `json:"youtubeUrl"`
	TwitterURL         string `json:"twitterUrl"`
	WhatsappNumber     string `json:"whatsappNumber"`
	EnableRegistration bool   `json:"enableRegistration"`
	MaintenanceMode    bool   `json:"maintenanceMode"`
}

// DefaultSettings is returned when the settings collection is empty or the
// backend is not configured, so the app always has something to render.
func DefaultSettings() AppSettings {
	return AppSettings{
		AppName:            "अभंगमाला",
		AppTitle:           "अभंगमाला",
		AppSubtitle:        "भजन मंडळ मोरावळे",
		AppDescription:     "भजन, अभंग आणि संतांच्या वाणीचा अनुभव",
		SplashText:         "विठ्ठल विठ्ठल विठोबा हरी ॐ",
		LoginMessage:       "भजन, अभंग आणि संतांच्या वाणीचा अनुभव घ्या",
		PrimaryColor:       "#FF6B35",
		FaviconURL:         "/vite.svg",
		AppIcon192:         "/pwa-icon.svg",
		AppIcon512:         "/pwa-icon.svg",
		AboutTitle:         "मंडळाविषयी",
		AboutDescription:   "जननी माता भजन मंडळ, मोरावळे.\n\nआमचे उद्दिष्ट वारकरी संप्रदायाचा प्रसार करणे आणि गावात भक्तीमय वातावरण निर्माण करणे हे आहे.",
		EnableRegistration: true,
	}
}

// User is the application-level user document; Role lives here rather than
// as an auth claim.
type User struct {
	ID          string    `json:"id,omitempty"`
	UID         string    `json:"uid"`
	Email       string    `json:"email,omitempty"`
	DisplayName string    `json:"displayName,omitempty"`
	PhotoURL    string    `json:"photoURL,omitempty"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
