package web

// MenuItem is one drink on the menu.
type MenuItem struct {
	Image       string
	Title       string
	Description string
	Price       string
}

// Review is a customer testimonial. Rating is out of five.
type Review struct {
	Name   string
	Role   string
	Text   string
	Rating int
}

// Stars renders the rating as filled and empty stars.
func (r Review) Stars() string {
	out := make([]rune, 0, 5)
	for i := 1; i <= 5; i++ {
		if i <= r.Rating {
			out = append(out, '★')
		} else {
			out = append(out, '☆')
		}
	}
	return string(out)
}

// GalleryImage is one picture in the café gallery.
type GalleryImage struct {
	Image string
	Title string
}

// GuestOption is an entry of the party-size selector.
type GuestOption struct {
	Value int
	Label string
}

// Content is the static copy rendered on the café page.
type Content struct {
	Name         string
	Phone        string
	Address      string
	Hours        string
	AboutTitle   string
	AboutText    string
	Perks        []string
	Menu         []MenuItem
	Reviews      []Review
	Gallery      []GalleryImage
	GuestOptions []GuestOption
}

// DefaultContent returns the café's published menu, reviews and gallery.
func DefaultContent() Content {
	return Content{
		Name:       "Coffee House",
		Phone:      "+1 (555) 123-4567",
		Address:    "123 Coffee Street, City, Country",
		Hours:      "Mon-Fri: 7AM-9PM",
		AboutTitle: "what's make our coffee special!",
		AboutText:  "Freshly roasted beans, patient baristas and a room you will want to stay in.",
		Perks: []string{
			"Guaranteed seating at your preferred time",
			"Special welcome drinks for reservations",
			"Personalized service experience",
			"Perfect for celebrations and meetings",
			"Free parking available",
		},
		Menu: []MenuItem{
			{Image: "/image/menuimage1.jpg", Title: "Espresso", Description: "Bold and rich single shot of pure coffee", Price: "3.99"},
			{Image: "/image/menuimage2.jpg", Title: "Cappuccino", Description: "Creamy espresso with velvety steamed milk", Price: "4.99"},
			{Image: "/image/menuimage3.jpg", Title: "Latte", Description: "Smooth espresso with hot milk and foam", Price: "4.99"},
			{Image: "/image/menuimage4.jpg", Title: "Mocha", Description: "Rich chocolate blended with espresso", Price: "5.49"},
			{Image: "/image/menuimage5.jpg", Title: "Americano", Description: "Espresso shots diluted with hot water", Price: "3.49"},
			{Image: "/image/menuimage6.jpg", Title: "Cold Brew", Description: "Smooth and chilled coffee perfection", Price: "4.49"},
		},
		Reviews: []Review{
			{Name: "Satya Panda", Role: "Regular Customer", Rating: 5,
				Text: "The best coffee shop in town! The atmosphere is cozy and the baristas are incredibly friendly. I come here every morning!"},
			{Name: "Shubhashree Mohanti", Role: "Coffee Enthusiast", Rating: 5,
				Text: "Outstanding quality! Their beans are fresh and the latte art is absolutely beautiful. Worth every penny."},
			{Name: "Aditya Yadav", Role: "Business Owner", Rating: 5,
				Text: "Perfect place for business meetings. Great WiFi, comfortable seating, and amazing pastries. Highly recommended!"},
			{Name: "Ankita Jena", Role: "Food Blogger", Rating: 4,
				Text: "Their espresso has the perfect crema and the food pairs beautifully with every drink. A gem of a cafe!"},
		},
		Gallery: []GalleryImage{
			{Image: "/image/gallaryimages.jpg", Title: "Cozy Ambiance"},
			{Image: "/image/cafeimageforgalary4.jpg", Title: "Artisan Coffee"},
			{Image: "/image/cafeimageforgallary.jpg", Title: "Delicious Treats"},
			{Image: "/image/cafeimageforgallary2.jpg", Title: "Great Company"},
			{Image: "/image/cafeimageforgallary3.jpg", Title: "Cozy Corner"},
			{Image: "/image/gallaryimages78.jpg", Title: "Coffee Moments"},
		},
		GuestOptions: []GuestOption{
			{Value: 1, Label: "1 Guest"},
			{Value: 2, Label: "2 Guests"},
			{Value: 3, Label: "3 Guests"},
			{Value: 4, Label: "4 Guests"},
			{Value: 5, Label: "5 Guests"},
			{Value: 6, Label: "6 Guests"},
			{Value: 7, Label: "7+ Guests"},
		},
	}
}
