//-------------------------------------------------------------------------
//
// pgEdge Pizza Analytics
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package datagen

// Reference menu the generator builds the catalog from. IDs follow the
// <type>_<size> convention used by the dataset files.

type menuItem struct {
	ID          string
	Name        string
	Category    string
	Ingredients string
	// BasePrice is the small-size price in cents; M adds 375, L adds 750.
	BasePrice int64
}

var menu = []menuItem{
	{"bbq_ckn", "The Barbecue Chicken Pizza", "Chicken",
		"Barbecued Chicken, Red Peppers, Green Peppers, Tomatoes, Red Onions, Barbecue Sauce", 1275},
	{"cali_ckn", "The California Chicken Pizza", "Chicken",
		"Chicken, Artichoke, Spinach, Garlic, Jalapeno Peppers, Fontina Cheese, Gouda Cheese", 1275},
	{"ckn_alfredo", "The Chicken Alfredo Pizza", "Chicken",
		"Chicken, Red Onions, Red Peppers, Mushrooms, Asiago Cheese, Alfredo Sauce", 1225},
	{"ckn_pesto", "The Chicken Pesto Pizza", "Chicken",
		"Chicken, Tomatoes, Red Peppers, Spinach, Garlic, Pesto Sauce", 1225},
	{"southw_ckn", "The Southwest Chicken Pizza", "Chicken",
		"Chicken, Tomatoes, Red Peppers, Red Onions, Jalapeno Peppers, Corn, Cilantro, Chipotle Sauce", 1275},
	{"thai_ckn", "The Thai Chicken Pizza", "Chicken",
		"Chicken, Pineapple, Tomatoes, Red Peppers, Thai Sweet Chilli Sauce", 1275},
	{"big_meat", "The Big Meat Pizza", "Classic",
		"Bacon, Pepperoni, Italian Sausage, Chorizo Sausage", 1200},
	{"classic_dlx", "The Classic Deluxe Pizza", "Classic",
		"Pepperoni, Mushrooms, Red Onions, Red Peppers, Bacon", 1200},
	{"hawaiian", "The Hawaiian Pizza", "Classic",
		"Sliced Ham, Pineapple, Mozzarella Cheese", 1050},
	{"ital_cpcllo", "The Italian Capocollo Pizza", "Classic",
		"Capocollo, Red Peppers, Tomatoes, Goat Cheese, Garlic, Oregano", 1225},
	{"napolitana", "The Napolitana Pizza", "Classic",
		"Tomatoes, Anchovies, Green Olives, Red Onions, Garlic", 1200},
	{"pep_msh_pep", "The Pepperoni, Mushroom, and Peppers Pizza", "Classic",
		"Pepperoni, Mushrooms, Green Peppers", 1100},
	{"pepperoni", "The Pepperoni Pizza", "Classic",
		"Mozzarella Cheese, Pepperoni", 975},
	{"the_greek", "The Greek Pizza", "Classic",
		"Kalamata Olives, Feta Cheese, Tomatoes, Garlic, Beef Chuck Roast, Red Onions", 1200},
	{"brie_carre", "The Brie Carre Pizza", "Supreme",
		"Brie Carre Cheese, Prosciutto, Caramelized Onions, Pears, Thyme, Garlic", 2350},
	{"calabrese", "The Calabrese Pizza", "Supreme",
		"Nduja Salami, Pancetta, Tomatoes, Red Onions, Friggitello Peppers, Garlic", 1225},
	{"italian_supr", "The Italian Supreme Pizza", "Supreme",
		"Calabrese Salami, Capocollo, Tomatoes, Red Onions, Green Olives, Garlic", 1250},
	{"peppr_salami", "The Pepper Salami Pizza", "Supreme",
		"Genoa Salami, Capocollo, Pepperoni, Tomatoes, Asiago Cheese, Garlic", 1250},
	{"prsc_argla", "The Prosciutto and Arugula Pizza", "Supreme",
		"Prosciutto di San Daniele, Arugula, Mozzarella Cheese", 1275},
	{"sicilian", "The Sicilian Pizza", "Supreme",
		"Coarse Sicilian Salami, Tomatoes, Green Olives, Luganega Sausage, Onions, Garlic", 1225},
	{"five_cheese", "The Five Cheese Pizza", "Veggie",
		"Mozzarella Cheese, Provolone Cheese, Smoked Gouda Cheese, Romano Cheese, Blue Cheese, Garlic", 1850},
	{"four_cheese", "The Four Cheese Pizza", "Veggie",
		"Ricotta Cheese, Gorgonzola Piccante Cheese, Mozzarella Cheese, Parmigiano Reggiano Cheese, Garlic", 1475},
	{"green_garden", "The Green Garden Pizza", "Veggie",
		"Spinach, Mushrooms, Tomatoes, Green Olives, Feta Cheese", 1200},
	{"ital_veggie", "The Italian Vegetables Pizza", "Veggie",
		"Eggplant, Artichokes, Tomatoes, Zucchini, Red Peppers, Garlic, Pesto Sauce", 1200},
	{"mediterraneo", "The Mediterranean Pizza", "Veggie",
		"Spinach, Artichokes, Kalamata Olives, Sun-dried Tomatoes, Feta Cheese, Plum Tomatoes, Red Onions", 1200},
	{"spinach_fet", "The Spinach and Feta Pizza", "Veggie",
		"Spinach, Mushrooms, Red Onions, Feta Cheese, Garlic", 1200},
	{"veggie_veg", "The Vegetables + Vegetables Pizza", "Veggie",
		"Mushrooms, Tomatoes, Red Peppers, Green Peppers, Red Onions, Zucchini, Spinach, Garlic", 1200},
}

// Sizes and their price offsets in cents, plus relative popularity.
var (
	sizes       = []string{"S", "M", "L"}
	sizeOffsets = map[string]int64{"S": 0, "M": 375, "L": 750}
	sizeWeights = []int{25, 40, 35}
)

// Relative popularity of order hours (11:00 through 23:00): lunch and
// dinner peaks, quiet late evening.
var (
	orderHours  = []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23}
	hourWeights = []int{7, 14, 13, 7, 5, 6, 8, 11, 10, 8, 6, 3, 2}
)
