// internal/mockdata/listings.go
package mockdata

import "github.com/cavea-app/cavea-backend/internal/models"

// Listings is the seed marketplace inventory. Titles, volumes and specs
// are deliberately messy free text: the normalizer has to cope with the
// same inconsistencies sellers produce. The accessory entries must never
// reach the canonical catalog.
func Listings() []models.Listing {
	return []models.Listing{
		{
			ID: "l-001", SellerID: "u-marcel", Title: "Ardbeg 10 ans", Category: models.CategoryWhisky,
			Price: 62, Stock: 3, Volume: "70cl",
			ImageURL: "/images/ardbeg-10.jpg",
			Specs:    models.ListingSpecs{Producer: "Ardbeg", Origin: "Islay, Écosse", Region: "Islay", ABV: "46%"},
		},
		{
			ID: "l-002", SellerID: "u-marcel", Title: "Springbank 18 ans", Category: models.CategoryWhisky,
			Price: 240, Stock: 1, Rarity: "rare", Volume: "70 cl",
			ImageURL: "/images/springbank-18.jpg",
			Specs:    models.ListingSpecs{Producer: "Springbank", Origin: "Campbeltown, Scotland", Region: "Campbeltown", ABV: "46"},
		},
		{
			ID: "l-003", SellerID: "u-camille", Title: "Yamazaki 12 ans", Category: models.CategoryWhisky,
			Price: 185, Stock: 2, Rarity: "rare", Volume: "70cl",
			ImageURL: "/images/yamazaki-12.jpg",
			Specs:    models.ListingSpecs{Producer: "Suntory", Origin: "Japon", ABV: "43%"},
		},
		{
			ID: "l-004", SellerID: "u-camille", Title: "Talisker Storm", Category: models.CategoryWhisky,
			Price: 48, Stock: 12, Volume: "70cl",
			ImageURL: "/images/talisker-storm.jpg",
			Specs:    models.ListingSpecs{Producer: "Talisker", Origin: "Skye, Écosse", Region: "Île de Skye", ABV: "45,8%"},
		},
		{
			ID: "l-005", SellerID: "u-jeanne", Title: "Château Margaux (2015)", Category: models.CategoryRouge,
			Price: 780, Stock: 1, Rarity: "rare", Volume: "75cl",
			ImageURL: "/images/margaux-2015.jpg",
			Specs:    models.ListingSpecs{Producer: "Château Margaux", Origin: "Bordeaux", Region: "Margaux", Vintage: "2015", ABV: "13,5"},
		},
		{
			ID: "l-006", SellerID: "u-jeanne", Title: "Clos de Tart Grand Cru (2018)", Category: models.CategoryRouge,
			Price: 520, Stock: 2, Rarity: "rare", Volume: "75 cl",
			ImageURL: "/images/clos-de-tart-2018.jpg",
			Specs:    models.ListingSpecs{Producer: "Clos de Tart", Origin: "Bourgogne", Region: "Morey-Saint-Denis", Vintage: "2018", ABV: "13%"},
		},
		{
			ID: "l-007", SellerID: "u-antoine", Title: "Château Talbot (2016)", Category: models.CategoryRouge,
			Price: 58, Stock: 14, Volume: "75cl",
			ImageURL: "/images/talbot-2016.jpg",
			Specs:    models.ListingSpecs{Producer: "Château Talbot", Origin: "Bordeaux", Region: "Saint-Julien", Vintage: "2016", ABV: "13"},
		},
		{
			ID: "l-008", SellerID: "u-antoine", Title: "Meursault Les Charmes (2020)", Category: models.CategoryBlanc,
			Price: 95, Stock: 6, Volume: "75cl",
			ImageURL: "/images/meursault-charmes-2020.jpg",
			Specs:    models.ListingSpecs{Producer: "Domaine Roulot", Origin: "Bourgogne", Region: "Meursault", Vintage: "2020", ABV: "13%"},
		},
		{
			ID: "l-009", SellerID: "u-sophie", Title: "Dom Pérignon (2013)", Category: models.CategoryChampagne,
			Price: 210, Stock: 4, Volume: "75cl",
			ImageURL: "/images/dom-perignon-2013.jpg",
			Specs:    models.ListingSpecs{Producer: "Moët & Chandon", Origin: "Champagne", Region: "Épernay", Vintage: "2013", ABV: "12,5%"},
		},
		{
			ID: "l-010", SellerID: "u-sophie", Title: "Krug Grande Cuvée", Category: models.CategoryChampagne,
			Price: 255, Stock: 2, Rarity: "rare", Volume: "75cl",
			ImageURL: "/images/krug-grande-cuvee.jpg",
			Specs:    models.ListingSpecs{Producer: "Krug", Origin: "Champagne", Region: "Reims", ABV: "12%"},
		},
		{
			ID: "l-011", SellerID: "u-marcel", Title: "Rhum Clément 15 ans", Category: models.CategoryRhum,
			Price: 128, Stock: 3, Volume: "70cl",
			ImageURL: "/images/clement-15.jpg",
			Specs:    models.ListingSpecs{Producer: "Clément", Origin: "Martinique", ABV: "42%"},
		},
		{
			ID: "l-012", SellerID: "u-antoine", Title: "Havana Club 7 ans", Category: models.CategoryRhum,
			Price: 32, Stock: 18, Volume: "70cl",
			ImageURL: "/images/havana-7.jpg",
			Specs:    models.ListingSpecs{Producer: "Havana Club", Origin: "Cuba", ABV: "40%"},
		},
		{
			ID: "l-013", SellerID: "u-jeanne", Title: "Hennessy XO", Category: models.CategoryCognac,
			Price: 195, Stock: 5, Volume: "70cl",
			ImageURL: "/images/hennessy-xo.jpg",
			Specs:    models.ListingSpecs{Producer: "Hennessy", Origin: "Cognac", Region: "Cognac", ABV: "40"},
		},
		{
			ID: "l-014", SellerID: "u-sophie", Title: "Michter's Small Batch", Category: models.CategoryWhisky,
			Price: 55, Stock: 10, Volume: "70cl",
			ImageURL: "/images/michters-small-batch.jpg",
			Specs:    models.ListingSpecs{Producer: "Michter's", Origin: "Kentucky, USA", ABV: "45,7%"},
		},
		{
			ID: "l-015", SellerID: "u-camille", Title: "Redbreast 12 ans", Category: models.CategoryWhisky,
			Price: 68, Stock: 7, Volume: "0.7l",
			ImageURL: "/images/redbreast-12.jpg",
			Specs:    models.ListingSpecs{Producer: "Redbreast", Origin: "Irlande", ABV: "40%"},
		},
		{
			// The seller typed no usable volume; normalization falls open
			// to 700 ml.
			ID: "l-016", SellerID: "u-marcel", Title: "Chartreuse Verte VEP", Category: models.CategoryBlanc,
			Price: 160, Stock: 2, Rarity: "rare", Volume: "bouteille standard",
			ImageURL: "/images/chartreuse-vep.jpg",
			Specs:    models.ListingSpecs{Producer: "Chartreuse", Origin: "Voiron", Region: "Isère", ABV: "54%"},
		},
		{
			ID: "l-017", SellerID: "u-jeanne", Title: "Magnum Château Talbot (2016)", Category: models.CategoryRouge,
			Price: 125, Stock: 2, Volume: "1.5L",
			ImageURL: "/images/talbot-magnum.jpg",
			Specs:    models.ListingSpecs{Producer: "Château Talbot", Origin: "Bordeaux", Region: "Saint-Julien", Vintage: "2016", ABV: "13"},
		},
		// Accessories: filtered out by the normalizer.
		{
			ID: "l-018", SellerID: "u-sophie", Title: "Coffret dégustation 6 verres", Category: models.CategoryGiftBox,
			Price: 45, Stock: 20, Volume: "",
			ImageURL: "/images/coffret-verres.jpg",
		},
		{
			ID: "l-019", SellerID: "u-antoine", Title: "Carafe à décanter cristal", Category: models.CategoryAccessory,
			Price: 85, Stock: 8, Volume: "",
			ImageURL: "/images/carafe-cristal.jpg",
		},
	}
}
