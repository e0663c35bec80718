package menu

// builtin is the default catalogue; days cycle Monday through Sunday.
var builtin = []Dish{
	{Day: "Monday", Name: "Grilled Chicken Salad", Category: "Main", Ingredients: "chicken, lettuce, tomatoes", DietType: "High-Protein"},
	{Day: "Tuesday", Name: "Vegan Buddha Bowl", Category: "Main", Ingredients: "quinoa, chickpeas, vegetables", DietType: "Vegan"},
	{Day: "Wednesday", Name: "Gluten-Free Pasta", Category: "Main", Ingredients: "gluten-free pasta, marinara sauce", DietType: "Gluten-Free"},
	{Day: "Thursday", Name: "Beetroot Soup", Category: "Side", Ingredients: "beetroot, herbs", DietType: "Vegan"},
	{Day: "Friday", Name: "High-Protein Stir Fry", Category: "Main", Ingredients: "chicken, broccoli, peppers", DietType: "High-Protein"},
	{Day: "Saturday", Name: "Pumpkin Pie", Category: "Dessert", Ingredients: "pumpkin, spices", DietType: "Vegetarian"},
	{Day: "Sunday", Name: "Quinoa Salad", Category: "Side", Ingredients: "quinoa, spinach", DietType: "Vegan"},
	{Day: "Monday", Name: "Tofu Tacos", Category: "Main", Ingredients: "tofu, tortillas, salsa", DietType: "Vegan"},
	{Day: "Tuesday", Name: "Herb-Roasted Chicken", Category: "Main", Ingredients: "chicken, herbs, tomatoes", DietType: "High-Protein"},
	{Day: "Wednesday", Name: "Vegetable Soup", Category: "Side", Ingredients: "vegetables, broth", DietType: "Vegan"},
	{Day: "Thursday", Name: "Spinach Lasagna", Category: "Main", Ingredients: "spinach, pasta, cheese", DietType: "Vegetarian"},
	{Day: "Friday", Name: "Lentil Curry", Category: "Main", Ingredients: "lentils, curry spices", DietType: "Vegan"},
	{Day: "Saturday", Name: "Mango Smoothie Bowl", Category: "Dessert", Ingredients: "mango, yogurt, granola", DietType: "Vegetarian"},
	{Day: "Sunday", Name: "Stuffed Bell Peppers", Category: "Main", Ingredients: "bell peppers, rice", DietType: "Vegan"},
	{Day: "Monday", Name: "Cauliflower Rice Bowl", Category: "Main", Ingredients: "cauliflower, herbs", DietType: "Vegan"},
	{Day: "Tuesday", Name: "Chickpea Stew", Category: "Main", Ingredients: "chickpeas, spices", DietType: "Vegan"},
	{Day: "Wednesday", Name: "Zucchini Noodles", Category: "Main", Ingredients: "zucchini, garlic", DietType: "Low-Carb"},
	{Day: "Thursday", Name: "Avocado Toast", Category: "Side", Ingredients: "avocado, bread", DietType: "Vegetarian"},
	{Day: "Friday", Name: "Black Bean Burger", Category: "Main", Ingredients: "black beans, buns", DietType: "Vegan"},
	{Day: "Saturday", Name: "Sweet Potato Fries", Category: "Side", Ingredients: "sweet potatoes, oil", DietType: "Vegan"},
	{Day: "Sunday", Name: "Berry Parfait", Category: "Dessert", Ingredients: "berries, yogurt", DietType: "Vegetarian"},
	{Day: "Monday", Name: "Falafel Wrap", Category: "Main", Ingredients: "falafel, wrap", DietType: "Vegan"},
	{Day: "Tuesday", Name: "Tomato Basil Soup", Category: "Side", Ingredients: "tomatoes, basil", DietType: "Vegetarian"},
	{Day: "Wednesday", Name: "Quinoa Porridge", Category: "Main", Ingredients: "quinoa, milk", DietType: "Vegan"},
	{Day: "Thursday", Name: "Eggplant Parmesan", Category: "Main", Ingredients: "eggplant, cheese", DietType: "Vegetarian"},
	{Day: "Friday", Name: "Carrot Ginger Soup", Category: "Side", Ingredients: "carrots, ginger", DietType: "Vegan"},
	{Day: "Saturday", Name: "Spinach and Feta Pie", Category: "Main", Ingredients: "spinach, feta", DietType: "Vegetarian"},
	{Day: "Sunday", Name: "Kale Salad", Category: "Side", Ingredients: "kale, lemon", DietType: "Vegan"},
	{Day: "Monday", Name: "Pumpkin Risotto", Category: "Main", Ingredients: "pumpkin, rice", DietType: "Vegetarian"},
	{Day: "Tuesday", Name: "Veggie Stir-Fry", Category: "Main", Ingredients: "vegetables, soy sauce", DietType: "Vegan"},
	{Day: "Wednesday", Name: "Butternut Squash Soup", Category: "Side", Ingredients: "butternut squash, cream", DietType: "Vegetarian"},
}
