package service

import "github.com/lifeos-app/lifeos-backend/internal/domain"

type seedCategory struct {
	name     string
	icon     string
	color    string
	children []seedChild
}

type seedChild struct {
	name  string
	icon  string
	color string
}

// defaultCategorySeed is the two-level category tree created when the store
// is empty. Children inherit the parent's type.
var defaultCategorySeed = map[domain.CategoryType][]seedCategory{
	domain.CategoryTypeExpense: {
		{
			name: "Food & Drink", icon: "restaurant", color: "#FF5722",
			children: []seedChild{
				{"General - Food & Drinks", "restaurant", "#FF5722"},
				{"Bar", "local_bar", "#FF7043"},
				{"Cafe", "local_cafe", "#FF8A65"},
				{"Groceries", "shopping_cart", "#FF9E80"},
				{"Restaurant", "restaurant_menu", "#FFAB91"},
				{"Fast Food", "fastfood", "#FFCCBC"},
			},
		},
		{
			name: "Shopping", icon: "shopping_bag", color: "#E91E63",
			children: []seedChild{
				{"General - Shopping", "shopping_bag", "#E91E63"},
				{"Clothes", "checkroom", "#EC407A"},
				{"Electronics & Accessories", "devices", "#F8BBD9"},
				{"Gifts", "card_giftcard", "#AD1457"},
				{"Health", "favorite", "#D81B60"},
				{"Home", "home", "#F06292"},
				{"Pets & Animals", "pets", "#FF4081"},
			},
		},
		{
			name: "Housing", icon: "home", color: "#795548",
			children: []seedChild{
				{"General - Housing", "home", "#795548"},
				{"Energy & Utilities", "bolt", "#8D6E63"},
				{"Maintenance & Repairs", "build", "#A1887F"},
				{"Mortgage", "account_balance", "#BCAAA4"},
				{"Rent", "key", "#5D4037"},
				{"Services", "cleaning_services", "#4E342E"},
			},
		},
		{
			name: "Transportation", icon: "directions_bus", color: "#2196F3",
			children: []seedChild{
				{"General - Transportation", "directions_bus", "#2196F3"},
				{"Business Trips", "business_center", "#42A5F5"},
				{"Long Distance", "flight", "#64B5F6"},
				{"Public Transport", "train", "#90CAF9"},
				{"Taxi", "local_taxi", "#BBDEFB"},
			},
		},
		{
			name: "Vehicle", icon: "directions_car", color: "#607D8B",
			children: []seedChild{
				{"General - Vehicle", "directions_car", "#607D8B"},
				{"Fuel", "local_gas_station", "#78909C"},
				{"Parking", "local_parking", "#B0BEC5"},
				{"Vehicle Insurance", "verified_user", "#546E7A"},
				{"Vehicle Maintenance", "car_repair", "#455A64"},
			},
		},
		{
			name: "Life & Entertainment", icon: "theater_comedy", color: "#9C27B0",
			children: []seedChild{
				{"General - Life & Entertainment", "theater_comedy", "#9C27B0"},
				{"Active Sport, Fitness", "fitness_center", "#AB47BC"},
				{"Books, Audio, Subscriptions", "library_books", "#CE93D8"},
				{"Education", "school", "#7B1FA2"},
				{"Health Care, Doctor", "medical_services", "#4A148C"},
				{"Hobbies", "brush", "#AA00FF"},
				{"Holiday, Trips, Hotels", "luggage", "#D500F9"},
				{"TV, Streaming", "live_tv", "#9C27B0"},
			},
		},
		{
			name: "Communication, PC", icon: "computer", color: "#00BCD4",
			children: []seedChild{
				{"General - Communication, PC", "computer", "#00BCD4"},
				{"Internet", "wifi", "#26C6DA"},
				{"Phone, Cell Phone", "phone_android", "#4DD0E1"},
				{"Software, Apps, Games", "apps", "#B2EBF2"},
			},
		},
		{
			name: "Financial Expenses", icon: "account_balance", color: "#F44336",
			children: []seedChild{
				{"General - Financial Expenses", "account_balance", "#F44336"},
				{"Charges, Fees", "receipt_long", "#E57373"},
				{"Insurances", "health_and_safety", "#E53935"},
				{"Loan, Interests", "money_off", "#D32F2F"},
				{"Taxes", "receipt", "#C62828"},
			},
		},
		{
			name: "Investments", icon: "trending_up", color: "#4CAF50",
			children: []seedChild{
				{"General - Investments", "trending_up", "#4CAF50"},
				{"Financial Investments", "insert_chart", "#81C784"},
				{"Savings", "savings", "#C8E6C9"},
				{"Crypto", "currency_bitcoin", "#388E3C"},
				{"Mutual Funds", "pie_chart", "#2E7D32"},
			},
		},
		{
			name: "Subscriptions", icon: "subscriptions", color: "#FF9800",
			children: []seedChild{
				{"General - Subscriptions", "subscriptions", "#FF9800"},
				{"Music", "music_note", "#FFA726"},
				{"Video Streaming", "movie", "#FFB74D"},
				{"Cloud Services", "cloud", "#FFCC80"},
			},
		},
		{
			name: "Others", icon: "more_horiz", color: "#9E9E9E",
			children: []seedChild{
				{"Missing", "help_outline", "#BDBDBD"},
			},
		},
	},
	domain.CategoryTypeIncome: {
		{
			name: "Income", icon: "attach_money", color: "#4CAF50",
			children: []seedChild{
				{"General - Income", "attach_money", "#4CAF50"},
				{"Salary", "payments", "#66BB6A"},
				{"Bonus", "card_giftcard", "#81C784"},
				{"Freelance / Side Hustle", "work", "#A5D6A7"},
				{"Interest Earned", "savings", "#C8E6C9"},
				{"Dividends", "trending_up", "#43A047"},
				{"Rental Income", "home", "#388E3C"},
			},
		},
	},
}
