package catalog

import "solarcatalog/internal/models"

const defaultIcon = "package"

var categoryIcons = map[string]string{
	string(models.CategorySolarPanels): "sun",
	string(models.CategoryInverters):   "zap",
	string(models.CategoryBatteries):   "battery-charging",
	string(models.CategoryMounting):    "wrench",
	string(models.CategoryAccessories): "cable",
	string(models.CategoryMonitoring):  "activity",
}

func iconFor(slug string) string {
	if icon, ok := categoryIcons[slug]; ok {
		return icon
	}
	return defaultIcon
}

// Served when the store cannot be reached. Each call returns fresh slices so
// callers may modify the result.

func fallbackCategories() []models.ProductCategory {
	return []models.ProductCategory{
		fallbackCategory(models.CategorySolarPanels, "Solar Panels",
			"Monocrystalline and bifacial modules for residential and commercial arrays.",
			"High efficiency cells", "25 year performance warranty", "Tier 1 manufacturers"),
		fallbackCategory(models.CategoryInverters, "Inverters",
			"String, hybrid and micro inverters for grid-tied and off-grid systems.",
			"MPPT tracking", "Grid-tie and hybrid models", "Remote monitoring ready"),
		fallbackCategory(models.CategoryBatteries, "Batteries",
			"Lithium iron phosphate storage for backup power and self consumption.",
			"LiFePO4 chemistry", "Modular capacity", "6000+ cycle life"),
		fallbackCategory(models.CategoryMounting, "Mounting Systems",
			"Roof, ground and carport structures engineered for local wind loads.",
			"Aluminium rails", "Corrosion resistant", "Fast installation"),
		fallbackCategory(models.CategoryAccessories, "Accessories",
			"Cables, connectors, combiner boxes and protection devices.",
			"MC4 compatible", "UV resistant cabling", "Surge protection"),
		fallbackCategory(models.CategoryMonitoring, "Monitoring",
			"Energy meters, gateways and apps to track production and consumption.",
			"Real-time data", "Mobile apps", "Fault alerts"),
	}
}

func fallbackCategory(slug models.CategorySlug, label, description string, features ...string) models.ProductCategory {
	return models.ProductCategory{
		ID:            string(slug),
		Label:         label,
		Description:   description,
		Icon:          iconFor(string(slug)),
		Features:      features,
		Products:      []string{},
		TotalProducts: 0,
	}
}

func fallbackBrands() []string {
	return []string{"Canadian Solar", "Enphase", "Huawei", "JinkoSolar", "SMA"}
}

func fallbackStats() models.ProductStats {
	return models.ProductStats{
		TotalProducts: 0,
		Categories:    6,
		Brands:        0,
		AverageRating: 4.5,
	}
}
