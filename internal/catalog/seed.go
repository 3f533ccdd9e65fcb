package catalog

import "fashion-store/internal/domain"

// Seed returns the built-in product collection. The storefront ships with a
// fixed catalogue; replacing it means shipping a new build.
func Seed() []domain.Product {
	return []domain.Product{
		{
			ID:            "1",
			Name:          "Classic Cotton T-Shirt",
			Description:   "Soft premium cotton tee with a relaxed fit, made from 100% organic cotton.",
			Price:         29.99,
			OriginalPrice: 39.99,
			Images:        []string{"/images/products/classic-tee-1.jpg", "/images/products/classic-tee-2.jpg"},
			Category:      "T-Shirts",
			Sizes:         []string{"XS", "S", "M", "L", "XL"},
			Colors:        []string{"White", "Black", "Navy", "Grey"},
			InStock:       true,
			Featured:      true,
		},
		{
			ID:          "2",
			Name:        "Slim Fit Denim Jeans",
			Description: "Stretch denim with a modern slim cut and classic five-pocket styling.",
			Price:       79.99,
			Images:      []string{"/images/products/slim-jeans-1.jpg", "/images/products/slim-jeans-2.jpg"},
			Category:    "Jeans",
			Sizes:       []string{"28", "30", "32", "34", "36"},
			Colors:      []string{"Indigo", "Black", "Light Wash"},
			InStock:     true,
			Featured:    true,
		},
		{
			ID:            "3",
			Name:          "Oversized Hoodie",
			Description:   "Heavyweight fleece hoodie with dropped shoulders and a kangaroo pocket.",
			Price:         59.99,
			OriginalPrice: 74.99,
			Images:        []string{"/images/products/oversized-hoodie-1.jpg"},
			Category:      "Hoodies",
			Sizes:         []string{"S", "M", "L", "XL", "XXL"},
			Colors:        []string{"Black", "Cream", "Forest Green"},
			InStock:       true,
		},
		{
			ID:          "4",
			Name:        "Wool Blend Overcoat",
			Description: "Tailored mid-length overcoat in a warm wool blend with a notch lapel.",
			Price:       199.99,
			Images:      []string{"/images/products/wool-overcoat-1.jpg", "/images/products/wool-overcoat-2.jpg"},
			Category:    "Outerwear",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Camel", "Charcoal"},
			InStock:     true,
			Featured:    true,
		},
		{
			ID:          "5",
			Name:        "Graphic Print T-Shirt",
			Description: "Limited run screen-printed tee on midweight combed cotton.",
			Price:       34.99,
			Images:      []string{"/images/products/graphic-tee-1.jpg"},
			Category:    "T-Shirts",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"White", "Black"},
			InStock:     true,
		},
		{
			ID:            "6",
			Name:          "Relaxed Straight Jeans",
			Description:   "Rigid denim with a straight leg and vintage-inspired high rise.",
			Price:         89.99,
			OriginalPrice: 109.99,
			Images:        []string{"/images/products/straight-jeans-1.jpg"},
			Category:      "Jeans",
			Sizes:         []string{"28", "30", "32", "34"},
			Colors:        []string{"Mid Wash", "Black"},
			InStock:       true,
		},
		{
			ID:          "7",
			Name:        "Zip-Through Hoodie",
			Description: "Everyday zip hoodie in brushed-back fleece with ribbed cuffs.",
			Price:       54.99,
			Images:      []string{"/images/products/zip-hoodie-1.jpg"},
			Category:    "Hoodies",
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"Grey Marl", "Navy", "Black"},
			InStock:     false,
		},
		{
			ID:          "8",
			Name:        "Quilted Puffer Jacket",
			Description: "Water-resistant puffer with recycled insulation and a packable hood.",
			Price:       149.99,
			Images:      []string{"/images/products/puffer-jacket-1.jpg", "/images/products/puffer-jacket-2.jpg"},
			Category:    "Outerwear",
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"Black", "Olive", "Burnt Orange"},
			InStock:     true,
		},
		{
			ID:          "9",
			Name:        "Linen Camp Collar Shirt",
			Description: "Breathable pure linen shirt with an open camp collar and boxy fit.",
			Price:       64.99,
			Images:      []string{"/images/products/linen-shirt-1.jpg"},
			Category:    "Shirts",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Natural", "Sage", "Sky Blue"},
			InStock:     true,
		},
		{
			ID:            "10",
			Name:          "Oxford Button-Down Shirt",
			Description:   "Classic oxford cloth shirt with a button-down collar and single pocket.",
			Price:         54.99,
			OriginalPrice: 69.99,
			Images:        []string{"/images/products/oxford-shirt-1.jpg"},
			Category:      "Shirts",
			Sizes:         []string{"XS", "S", "M", "L", "XL"},
			Colors:        []string{"White", "Light Blue", "Pink"},
			InStock:       true,
			Featured:      true,
		},
		{
			ID:          "11",
			Name:        "Leather Belt",
			Description: "Full-grain leather belt with a brushed metal buckle.",
			Price:       39.99,
			Images:      []string{"/images/products/leather-belt-1.jpg"},
			Category:    "Accessories",
			Sizes:       []string{"S", "M", "L"},
			Colors:      []string{"Tan", "Dark Brown", "Black"},
			InStock:     true,
		},
		{
			ID:          "12",
			Name:        "Merino Wool Beanie",
			Description: "Fine-gauge merino beanie with a double-folded cuff.",
			Price:       24.99,
			Images:      []string{"/images/products/merino-beanie-1.jpg"},
			Category:    "Accessories",
			Sizes:       []string{"One Size"},
			Colors:      []string{"Black", "Oatmeal", "Rust"},
			InStock:     true,
		},
	}
}
