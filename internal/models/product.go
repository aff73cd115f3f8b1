package models

// CategorySlug identifies one of the fixed catalog categories.
type CategorySlug string

const (
	CategorySolarPanels CategorySlug = "solar-panels"
	CategoryInverters   CategorySlug = "inverters"
	CategoryBatteries   CategorySlug = "batteries"
	CategoryMounting    CategorySlug = "mounting"
	CategoryAccessories CategorySlug = "accessories"
	CategoryMonitoring  CategorySlug = "monitoring"
)

// CategorySlugs lists the catalog categories in display order.
var CategorySlugs = []CategorySlug{
	CategorySolarPanels,
	CategoryInverters,
	CategoryBatteries,
	CategoryMounting,
	CategoryAccessories,
	CategoryMonitoring,
}

// Product is the flat product shape served to the website.
type Product struct {
	ID               string             `json:"id"`
	Slug             string             `json:"slug,omitempty"`
	Name             string             `json:"name"`
	ShortDescription string             `json:"shortDescription"`
	Description      string             `json:"description"`
	Category         CategorySlug       `json:"category"`
	CategoryID       string             `json:"categoryId,omitempty"`
	Subcategory      string             `json:"subcategory"`
	Brand            string             `json:"brand"`
	BrandID          string             `json:"brandId,omitempty"`
	Model            string             `json:"model"`
	Specifications   map[string]string  `json:"specifications"`
	Features         []string           `json:"features"`
	PriceRange       string             `json:"priceRange"`
	MinOrderQuantity string             `json:"moq"`
	Warranty         string             `json:"warranty"`
	Efficiency       string             `json:"efficiency,omitempty"`
	Capacity         string             `json:"capacity,omitempty"`
	Image            string             `json:"image"`
	Images           []string           `json:"images"`
	Rating           float64            `json:"rating"`
	ReviewCount      int                `json:"reviewCount"`
	Popular          bool               `json:"popular"`
	Featured         bool               `json:"featured"`
	InStock          bool               `json:"inStock"`
	LeadTime         string             `json:"leadTime"`
	Certifications   []string           `json:"certifications"`
	Applications     []string           `json:"applications"`
	CompatibleWith   []string           `json:"compatibleWith,omitempty"`
	TechnicalDocs    TechnicalDocuments `json:"technicalDocs"`
	Media            ProductMedia       `json:"media"`
	Reviews          []Testimonial      `json:"reviews,omitempty"`
}

// TechnicalDocuments groups the downloadable documents of a product.
type TechnicalDocuments struct {
	Datasheet         string   `json:"datasheet,omitempty"`
	InstallationGuide string   `json:"installationGuide,omitempty"`
	WarrantyDocument  string   `json:"warranty,omitempty"`
	Certificates      []string `json:"certificates"`
}

type ProductMedia struct {
	Videos []string `json:"videos"`
	PDFs   []string `json:"pdfs"`
}

// Testimonial is a customer review as shown on product pages.
type Testimonial struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Role     string  `json:"role,omitempty"`
	Location string  `json:"location,omitempty"`
	Content  string  `json:"content"`
	Rating   float64 `json:"rating"`
	Date     string  `json:"date,omitempty"`
	Verified bool    `json:"verified"`
}
