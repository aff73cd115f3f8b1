package catalog

import (
	"cmp"
	"slices"
	"strings"

	"solarcatalog/internal/models"
)

// ToLegacyProduct flattens a stored product and its joined rows into the
// shape served to the website. Missing lists become empty slices.
func ToLegacyProduct(r models.ProductRecord) models.Product {
	p := models.Product{
		ID:               r.ID,
		Slug:             r.Slug,
		Name:             r.Name,
		ShortDescription: r.ShortDescription,
		Description:      r.Description,
		CategoryID:       r.CategoryID,
		Subcategory:      r.Subcategory,
		BrandID:          r.BrandID,
		Model:            r.Model,
		Specifications:   make(map[string]string, len(r.Specifications)),
		Features:         make([]string, 0, len(r.Features)),
		PriceRange:       r.PriceRange,
		MinOrderQuantity: r.MinOrderQuantity,
		Warranty:         r.Warranty,
		Efficiency:       r.Efficiency,
		Capacity:         r.Capacity,
		Image:            r.ImageURL,
		Images:           []string{},
		Rating:           r.Rating,
		ReviewCount:      r.ReviewCount,
		Popular:          r.Popular,
		Featured:         r.Featured,
		InStock:          r.InStock,
		LeadTime:         r.LeadTime,
		Certifications:   namesOf(r.Certifications),
		Applications:     namesOf(r.Applications),
		TechnicalDocs:    models.TechnicalDocuments{Certificates: []string{}},
		Media:            models.ProductMedia{Videos: []string{}, PDFs: []string{}},
	}

	if r.Category != nil {
		p.Category = models.CategorySlug(r.Category.Slug)
		if p.CategoryID == "" {
			p.CategoryID = r.Category.ID
		}
	}
	if r.Brand != nil {
		p.Brand = r.Brand.Name
		if p.BrandID == "" {
			p.BrandID = r.Brand.ID
		}
	}
	if len(r.CompatibleWith) > 0 {
		p.CompatibleWith = slices.Clone([]string(r.CompatibleWith))
	}

	applyImages(&p, r.Images)

	specs := slices.Clone(r.Specifications)
	slices.SortStableFunc(specs, func(a, b models.SpecificationRecord) int {
		return cmp.Compare(a.SortOrder, b.SortOrder)
	})
	for _, s := range specs {
		if name := strings.TrimSpace(s.Name); name != "" {
			p.Specifications[name] = s.Value
		}
	}

	features := slices.Clone(r.Features)
	slices.SortStableFunc(features, func(a, b models.FeatureRecord) int {
		return cmp.Compare(a.SortOrder, b.SortOrder)
	})
	for _, f := range features {
		if f.Feature != "" {
			p.Features = append(p.Features, f.Feature)
		}
	}

	applyDocuments(&p, r.Documents)

	for _, v := range r.Videos {
		if v.URL != "" {
			p.Media.Videos = append(p.Media.Videos, v.URL)
		}
	}

	if len(r.Reviews) > 0 {
		p.Reviews = make([]models.Testimonial, 0, len(r.Reviews))
		for _, review := range r.Reviews {
			p.Reviews = append(p.Reviews, ToTestimonial(review))
		}
	}

	return p
}

// applyImages picks the primary image and lists the rest in sort order. The
// legacy imageUrl field is kept when no image rows exist.
func applyImages(p *models.Product, rows []models.ImageRecord) {
	images := slices.Clone(rows)
	slices.SortStableFunc(images, func(a, b models.ImageRecord) int {
		return cmp.Compare(a.SortOrder, b.SortOrder)
	})
	images = slices.DeleteFunc(images, func(img models.ImageRecord) bool {
		return img.URL == ""
	})
	if len(images) == 0 {
		return
	}

	primary := 0
	for i, img := range images {
		if img.IsPrimary {
			primary = i
			break
		}
	}
	p.Image = images[primary].URL
	for i, img := range images {
		if i != primary {
			p.Images = append(p.Images, img.URL)
		}
	}
}

func applyDocuments(p *models.Product, docs []models.DocumentRecord) {
	for _, d := range docs {
		if d.URL == "" {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(d.Type)) {
		case "datasheet":
			if p.TechnicalDocs.Datasheet == "" {
				p.TechnicalDocs.Datasheet = d.URL
			}
		case "manual", "installation":
			if p.TechnicalDocs.InstallationGuide == "" {
				p.TechnicalDocs.InstallationGuide = d.URL
			}
		case "warranty":
			if p.TechnicalDocs.WarrantyDocument == "" {
				p.TechnicalDocs.WarrantyDocument = d.URL
			}
		case "certificate":
			p.TechnicalDocs.Certificates = append(p.TechnicalDocs.Certificates, d.URL)
		}
		p.Media.PDFs = append(p.Media.PDFs, d.URL)
	}
}

func namesOf(rows []models.NamedRecord) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		if name := strings.TrimSpace(r.Name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// ToTestimonial converts a review row into the testimonial shape.
func ToTestimonial(r models.ReviewRecord) models.Testimonial {
	t := models.Testimonial{
		ID:       r.ID,
		Name:     r.CustomerName,
		Role:     r.CustomerRole,
		Location: r.Location,
		Content:  r.Content,
		Rating:   r.Rating,
		Verified: r.Verified,
	}
	if !r.CreatedAt.IsZero() {
		t.Date = r.CreatedAt.Format("2006-01-02")
	}
	return t
}

// ToProductCategory attaches the display icon to a stored category.
func ToProductCategory(r models.CategoryRecord) models.ProductCategory {
	c := models.ProductCategory{
		ID:            r.Slug,
		Label:         r.Name,
		Description:   r.Description,
		Icon:          iconFor(r.Slug),
		Features:      slices.Clone(r.Features),
		Products:      slices.Clone(r.ProductIDs),
		TotalProducts: r.ProductCount,
	}
	if c.Features == nil {
		c.Features = []string{}
	}
	if c.Products == nil {
		c.Products = []string{}
	}
	return c
}
