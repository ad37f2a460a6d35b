package storage

// Bundled fallback dataset, used when a persisted document is missing or
// malformed. Field values deliberately mix the delimited formats the
// ingestion layer accepts: real JSON arrays, JSON-array-looking strings,
// semicolon lists and comma lists.
const SeedRecipesJSON = `[
  {
    "recipe_id": 38, "name": "Low-Fat Berry Blue Frozen Dessert",
    "description": "Make and share this berry dessert, a family favourite in summer.",
    "author_id": "1533", "author_name": "Dancer", "recipe_category": "Frozen Desserts",
    "keywords": "[\"Dessert\",\"Low Protein\",\"Low Cholesterol\",\"Healthy\"]",
    "recipe_ingredient_quantities": "4;1/4;1;1",
    "recipe_ingredient_parts": "blueberries;granulated sugar;vanilla yogurt;lemon juice",
    "recipe_instructions": ["Toss berries with sugar.", "Let stand 45 minutes.", "Fold in yogurt and freeze."],
    "images": "https://img.sndimg.com/recipe/38/1.jpg,https://img.sndimg.com/recipe/38/2.jpg",
    "aggregated_rating": 4.5, "review_count": 4, "calories": 170.9,
    "recipe_servings": 4, "recipe_yield": "1 quart",
    "prep_time": "PT45M", "cook_time": "PT24H", "total_time": "PT24H45M",
    "date_published": "1999-08-09T21:46:00Z"
  },
  {
    "recipe_id": 39, "name": "Biryani",
    "description": "A classic layered rice dish with saffron and fried onions.",
    "author_id": "1567", "author_name": "elly9812", "recipe_category": "Chicken Breast",
    "keywords": ["Chicken", "Asian", "Indian", "Weeknight"],
    "recipe_ingredient_quantities": ["2", "1", "3", "1/2"],
    "recipe_ingredient_parts": ["basmati rice", "chicken", "saffron", "clarified butter"],
    "recipe_instructions": ["Soak saffron in warm milk.", "Brown the onions.", "Layer rice and chicken, steam until done."],
    "images": ["https://img.sndimg.com/recipe/39/1.jpg"],
    "aggregated_rating": 4, "review_count": 2, "calories": 1110.7,
    "recipe_servings": 6, "recipe_yield": "",
    "prep_time": "PT24H", "cook_time": "PT25M", "total_time": "PT24H25M",
    "date_published": "1999-08-29T13:12:00Z"
  },
  {
    "recipe_id": 41, "name": "Chocolate Fudge Cake",
    "description": "Rich, dense chocolate cake with a glossy fudge icing.",
    "author_id": "1545", "author_name": "Stephen Little", "recipe_category": "Dessert",
    "keywords": "Chocolate,Cake,Oven,Sweet",
    "recipe_ingredient_quantities": "2,1,3,1",
    "recipe_ingredient_parts": "dark chocolate,flour,eggs,butter",
    "recipe_instructions": ["Melt chocolate with butter.", "Fold in flour and eggs.", "Bake at 175C for 35 minutes."],
    "images": ["https://img.sndimg.com/recipe/41/1.jpg"],
    "aggregated_rating": 5, "review_count": 3, "calories": 512.3,
    "recipe_servings": 8, "recipe_yield": "1 cake",
    "prep_time": "PT20M", "cook_time": "PT35M", "total_time": "PT55M",
    "date_published": "1999-09-03T09:10:00Z"
  },
  {
    "recipe_id": 44, "name": "Tomato Basil Soup",
    "description": "Smooth roasted tomato soup finished with fresh basil and cream.",
    "author_id": "1596", "author_name": "Pat K", "recipe_category": "Vegetable",
    "keywords": ["Soup", "Vegetarian", "Low Protein", "Winter"],
    "recipe_ingredient_quantities": ["8", "1", "2", "1/2"],
    "recipe_ingredient_parts": ["roma tomatoes", "yellow onion", "garlic cloves", "heavy cream"],
    "recipe_instructions": ["Roast tomatoes and garlic.", "Simmer with stock.", "Blend smooth and finish with basil."],
    "images": [],
    "aggregated_rating": 4.2, "review_count": 5, "calories": 210.4,
    "recipe_servings": 4, "recipe_yield": "6 cups",
    "prep_time": "PT15M", "cook_time": "PT40M", "total_time": "PT55M",
    "date_published": "2000-01-12T17:25:00Z"
  },
  {
    "recipe_id": 45, "name": "Buttermilk Pancakes",
    "description": "Fluffy weekend pancakes that hold up to plenty of syrup.",
    "author_id": "1601", "author_name": "Charishma", "recipe_category": "Breakfast",
    "keywords": "Breakfast;Kid Friendly;Quick",
    "recipe_ingredient_quantities": "2;2;1;3",
    "recipe_ingredient_parts": "all-purpose flour;buttermilk;eggs;baking powder",
    "recipe_instructions": ["Whisk the dry ingredients.", "Stir in buttermilk and eggs.", "Cook on a hot griddle until golden."],
    "images": ["https://img.sndimg.com/recipe/45/1.jpg"],
    "aggregated_rating": 3.8, "review_count": 6, "calories": 320,
    "recipe_servings": 4, "recipe_yield": "12 pancakes",
    "prep_time": "PT10M", "cook_time": "PT15M", "total_time": "PT25M",
    "date_published": "2000-02-02T08:00:00Z"
  },
  {
    "recipe_id": 47, "name": "Thai Green Curry",
    "description": "Fragrant coconut curry with green chilies and kaffir lime.",
    "author_id": "1622", "author_name": "Tastebud Tim", "recipe_category": "Curries",
    "keywords": ["Thai", "Asian", "Spicy", "Chicken"],
    "recipe_ingredient_quantities": ["1", "400", "2", "6"],
    "recipe_ingredient_parts": ["green curry paste", "coconut milk", "chicken thighs", "thai basil leaves"],
    "recipe_instructions": ["Fry the curry paste in coconut cream.", "Add chicken and simmer.", "Finish with basil and fish sauce."],
    "images": ["https://img.sndimg.com/recipe/47/1.jpg"],
    "aggregated_rating": 0, "review_count": 0, "calories": 480.5,
    "recipe_servings": 4, "recipe_yield": "",
    "prep_time": "PT20M", "cook_time": "PT30M", "total_time": "PT50M",
    "date_published": "2000-03-19T11:45:00Z"
  },
  {
    "recipe_id": 52, "name": "Sourdough Bread",
    "description": "Slow-fermented loaf with an open crumb and crackling crust.",
    "author_id": "1640", "author_name": "Baker Bea", "recipe_category": "Sourdough Breads",
    "keywords": "Bread,Baking,Weekend",
    "recipe_ingredient_quantities": ["500", "350", "100", "10"],
    "recipe_ingredient_parts": ["bread flour", "water", "sourdough starter", "salt"],
    "recipe_instructions": ["Mix and autolyse.", "Fold every half hour for three hours.", "Proof overnight.", "Bake in a covered pot."],
    "images": [],
    "aggregated_rating": 4.9, "review_count": 8, "calories": 180.2,
    "recipe_servings": 12, "recipe_yield": "1 loaf",
    "prep_time": "PT12H", "cook_time": "PT45M", "total_time": "PT12H45M",
    "date_published": "2000-05-07T19:30:00Z"
  },
  {
    "recipe_id": 56, "name": "Caesar Salad",
    "description": "Crisp romaine, garlic croutons and a proper anchovy dressing.",
    "author_id": "1652", "author_name": "Leta S", "recipe_category": "Salad",
    "keywords": ["Salad", "Quick", "Lunch"],
    "recipe_ingredient_quantities": ["2", "4", "1/2", "2"],
    "recipe_ingredient_parts": ["romaine lettuce", "anchovy fillets", "parmesan cheese", "egg yolks"],
    "recipe_instructions": ["Whisk the dressing.", "Toast the croutons.", "Toss and serve immediately."],
    "images": ["https://img.sndimg.com/recipe/56/1.jpg"],
    "aggregated_rating": 0, "review_count": 0, "calories": 260.8,
    "recipe_servings": 2, "recipe_yield": "",
    "prep_time": "PT15M", "cook_time": "PT10M", "total_time": "PT25M",
    "date_published": "2000-06-24T12:05:00Z"
  }
]`

const SeedReviewsJSON = `[
  {"review_id": 2046, "recipe_id": 38, "author_id": "1634", "author_name": "greyhound mom", "rating": 5, "review": "Delicious and so easy, the kids loved it.", "date_submitted": "2000-01-25T21:44:00Z", "date_modified": "2000-01-25T21:44:00Z"},
  {"review_id": 2047, "recipe_id": 38, "author_id": "1773", "author_name": "mer5901", "rating": 4, "review": "Very refreshing, next time I will use less sugar.", "date_submitted": "2000-02-12T08:20:00Z", "date_modified": "2000-02-12T08:20:00Z"},
  {"review_id": 2180, "recipe_id": 39, "author_id": "1811", "author_name": "MustHaveCoffee", "rating": 4, "review": "The saffron makes all the difference here.", "date_submitted": "2000-03-02T18:10:00Z", "date_modified": "2000-03-02T18:10:00Z"},
  {"review_id": 2231, "recipe_id": 41, "author_id": "1august", "author_name": "August P", "rating": 5, "review": "Best chocolate cake I have made, dense and moist.", "date_submitted": "2000-03-28T14:55:00Z", "date_modified": "2000-03-28T14:55:00Z"},
  {"review_id": 2310, "recipe_id": 44, "author_id": "1903", "author_name": "SoupFan", "rating": 4, "review": "Roasting the tomatoes first is worth the time.", "date_submitted": "2000-04-15T19:40:00Z", "date_modified": "2000-04-15T19:40:00Z"},
  {"review_id": 2355, "recipe_id": 52, "author_id": "1640", "author_name": "Baker Bea", "rating": 5, "review": "The overnight proof gives a wonderful sour note.", "date_submitted": "2000-06-01T07:12:00Z", "date_modified": "2000-06-01T07:12:00Z"}
]`
