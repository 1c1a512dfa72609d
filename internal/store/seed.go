package store

import (
	"context"
	"log"

	"github.com/RenoBuildCo/reno-marketplace/internal/models"
)

// SeedContractors inserts the starter contractor directory when the
// store is empty. Idempotent across restarts for the postgres adapter.
func SeedContractors(ctx context.Context, s Store) {
	existing, err := s.ListContractors(ctx)
	if err != nil {
		log.Printf("seed: failed to list contractors: %v", err)
		return
	}
	if len(existing) > 0 {
		return
	}

	seed := []models.Contractor{
		{
			Name:         "Sharma Construction",
			Description:  "Specializing in full home renovations with over 15 years of experience. Licensed and insured.",
			Specialty:    "General",
			ProfileImage: "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=256&h=256",
			Email:        "info@sharmaconstruction.com",
			Phone:        "+91 98765 43210",
			Specialties:  []string{"Kitchen", "Bathroom", "Vastu Compliant"},
			Location:     "Delhi, India",
		},
		{
			Name:         "Luxury Kitchen Designs",
			Description:  "Luxury kitchen renovations and custom cabinetry. Award-winning designs and certified installers.",
			Specialty:    "Specialist",
			ProfileImage: "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?w=256&h=256",
			Email:        "design@luxurykitchens.co.in",
			Phone:        "+91 87654 32109",
			Specialties:  []string{"Modular Kitchens", "Cabinets", "Granite Countertops"},
			Location:     "Mumbai, India",
		},
		{
			Name:         "Modern Bath Solutions",
			Description:  "Complete bathroom remodeling services. Specializing in accessible designs and quick turnarounds.",
			Specialty:    "Specialist",
			ProfileImage: "https://images.unsplash.com/photo-1566492031773-4f4e44671857?w=256&h=256",
			Email:        "info@modernbath.co.in",
			Phone:        "+91 76543 21098",
			Specialties:  []string{"Bathrooms", "Jacuzzi", "Accessible"},
			Location:     "Bangalore, India",
		},
		{
			Name:         "Patel Home Builders",
			Description:  "Custom home construction and major renovations with attention to detail and quality craftsmanship.",
			Specialty:    "General",
			ProfileImage: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=256&h=256",
			Email:        "build@patelhomes.in",
			Phone:        "+91 65432 10987",
			Specialties:  []string{"New Construction", "Bungalows", "Duplex Homes"},
			Location:     "Ahmedabad, India",
		},
		{
			Name:         "Eco-Friendly Renovations",
			Description:  "Sustainable renovation services using recycled materials and energy-efficient designs.",
			Specialty:    "Specialist",
			ProfileImage: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=256&h=256",
			Email:        "green@ecofriendly.co.in",
			Phone:        "+91 54321 09876",
			Specialties:  []string{"Solar Integration", "Energy Efficiency", "Sustainable Materials"},
			Location:     "Pune, India",
		},
		{
			Name:         "Mehta Electrical Services",
			Description:  "Professional electrical contractors for residential and commercial projects. Full-service from wiring to smart home installations.",
			Specialty:    "Electrical",
			ProfileImage: "https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?w=256&h=256",
			Email:        "service@mehtaelectrical.in",
			Phone:        "+91 43210 98765",
			Specialties:  []string{"Electrical", "Lighting", "Smart Home"},
			Location:     "Chennai, India",
		},
	}

	for i := range seed {
		if err := s.CreateContractor(ctx, &seed[i]); err != nil {
			log.Printf("seed: failed to create contractor %q: %v", seed[i].Name, err)
		}
	}
}
