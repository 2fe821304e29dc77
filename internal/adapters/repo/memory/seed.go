package memory

import "audiomart/internal/domain"

const (
	imgSoundPods  = "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=300&h=300&fit=crop"
	imgBassBuds   = "https://images.unsplash.com/photo-1606220588913-b3aacb4d2f46?w=300&h=300&fit=crop"
	imgClearSound = "https://images.unsplash.com/photo-1631867675167-90a456a90863?w=300&h=300&fit=crop"
	imgBudZ       = "https://images.unsplash.com/photo-1598331668826-20cecc596b86?w=300&h=300&fit=crop"
	imgNoisePods  = "https://images.unsplash.com/photo-1572569511254-d8f925fe2cbb?w=300&h=300&fit=crop"
	imgFitBuds    = "https://images.unsplash.com/photo-1608156639585-b3a776ea2049?w=300&h=300&fit=crop"
	imgStudioPods = "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=300&h=300&fit=crop"
	imgEcoBuds    = "https://images.unsplash.com/photo-1484704849700-f032a568e944?w=300&h=300&fit=crop"
	imgAirClone   = "https://images.unsplash.com/photo-1600294037681-c80b4cb5b434?w=300&h=300&fit=crop"
	imgGamePods   = "https://images.unsplash.com/photo-1583394838336-acd977736f90?w=300&h=300&fit=crop"
	imgTravelPods = "https://images.unsplash.com/photo-1613040809024-b4ef7ba99bc3?w=300&h=300&fit=crop"
)

var seedProducts = []domain.Product{
	{
		ID: "1", Name: "SoundPods Pro Max", Brand: "AudioTech", Image: imgSoundPods,
		Rating: 4.5, Reviews: 12543, Price: 2499, OriginalPrice: 4999, Discount: 50,
		Highlights: []string{"40H Battery", "ANC", "HD Calls"}, BatteryLife: 40,
		HasANC: true, HasWirelessCharging: true,
		ColorVariants: []domain.ColorVariant{
			{Name: "Midnight Black", Color: "#1A1A1A", Images: []string{imgSoundPods, imgSoundPods, imgSoundPods}},
			{Name: "Pearl White", Color: "#F5F5F5", Images: []string{imgBassBuds, imgBassBuds, imgBassBuds}},
			{Name: "Ocean Blue", Color: "#1E3A5F", Images: []string{imgClearSound, imgClearSound, imgClearSound}},
		},
	},
	{
		ID: "2", Name: "BassBuds Elite", Brand: "SoundWave", Image: imgBassBuds,
		Rating: 4.3, Reviews: 8921, Price: 1799, OriginalPrice: 2999, Discount: 40,
		Highlights: []string{"30H Battery", "Deep Bass", "IPX5"}, BatteryLife: 30,
	},
	{
		ID: "3", Name: "ClearSound X1", Brand: "AudioTech", Image: imgClearSound,
		Rating: 4.7, Reviews: 5632, Price: 3999, OriginalPrice: 5999, Discount: 33,
		Highlights: []string{"50H Battery", "Premium ANC", "Spatial Audio"}, BatteryLife: 50,
		HasANC: true, HasWirelessCharging: true,
	},
	{
		ID: "4", Name: "BudZ Lite", Brand: "EchoSound", Image: imgBudZ,
		Rating: 4.2, Reviews: 15234, Price: 699, OriginalPrice: 1499, Discount: 53,
		Highlights: []string{"20H Battery", "Lightweight", "Quick Pair"}, BatteryLife: 20,
	},
	{
		ID: "5", Name: "NoisePods Ultra", Brand: "QuietZone", Image: imgNoisePods,
		Rating: 4.6, Reviews: 7845, Price: 4499, OriginalPrice: 6999, Discount: 36,
		Highlights: []string{"45H Battery", "Adaptive ANC", "Wireless Charge"}, BatteryLife: 45,
		HasANC: true, HasWirelessCharging: true,
	},
	{
		ID: "6", Name: "FitBuds Sport", Brand: "ActiveGear", Image: imgFitBuds,
		Rating: 4.4, Reviews: 9123, Price: 1299, OriginalPrice: 2499, Discount: 48,
		Highlights: []string{"25H Battery", "IPX7", "Secure Fit"}, BatteryLife: 25,
	},
	{
		ID: "7", Name: "StudioPods Pro", Brand: "SoundWave", Image: imgStudioPods,
		Rating: 4.8, Reviews: 3421, Price: 5999, OriginalPrice: 8999, Discount: 33,
		Highlights: []string{"60H Battery", "Studio ANC", "Hi-Res Audio"}, BatteryLife: 60,
		HasANC: true, HasWirelessCharging: true,
	},
	{
		ID: "8", Name: "EcoBuds Green", Brand: "EchoSound", Image: imgEcoBuds,
		Rating: 4.1, Reviews: 6543, Price: 999, OriginalPrice: 1999, Discount: 50,
		Highlights: []string{"28H Battery", "Eco-Friendly", "Clear Calls"}, BatteryLife: 28,
	},
	{
		ID: "9", Name: "AirPods Clone X", Brand: "QuietZone", Image: imgAirClone,
		Rating: 4.0, Reviews: 18234, Price: 549, OriginalPrice: 999, Discount: 45,
		Highlights: []string{"18H Battery", "Touch Control", "Compact"}, BatteryLife: 18,
	},
	{
		ID: "10", Name: "GamePods Zero", Brand: "ActiveGear", Image: imgGamePods,
		Rating: 4.9, Reviews: 4521, Price: 2999, OriginalPrice: 4499, Discount: 33,
		Highlights: []string{"35H Battery", "Low Latency", "RGB Lights"}, BatteryLife: 35,
		HasANC: true,
	},
	{
		ID: "11", Name: "TravelPods Comfort", Brand: "AudioTech", Image: imgTravelPods,
		Rating: 4.6, Reviews: 2987, Price: 3499, OriginalPrice: 4999, Discount: 30,
		Highlights: []string{"42H Battery", "Flight Mode", "Comfort Fit"}, BatteryLife: 42,
		HasANC: true, HasWirelessCharging: true,
	},
	{
		ID: "12", Name: "BudZ Mini", Brand: "EchoSound", Image: imgSoundPods,
		Rating: 4.3, Reviews: 21345, Price: 399, OriginalPrice: 799, Discount: 50,
		Highlights: []string{"15H Battery", "Ultra Light", "Basic Audio"}, BatteryLife: 15,
	},
	{
		ID: "13", Name: "SonicWave Pro", Brand: "SoundWave", Image: imgSoundPods,
		Rating: 4.5, Reviews: 5678, Price: 1999, OriginalPrice: 3499, Discount: 43,
		Highlights: []string{"32H Battery", "Bass Boost", "IPX4"}, BatteryLife: 32,
	},
	{
		ID: "14", Name: "QuietMax ANC", Brand: "QuietZone", Image: imgBassBuds,
		Rating: 4.7, Reviews: 4321, Price: 4299, OriginalPrice: 6499, Discount: 34,
		Highlights: []string{"48H Battery", "Premium ANC", "Multi-Device"}, BatteryLife: 48,
		HasANC: true, HasWirelessCharging: true,
	},
	{
		ID: "15", Name: "ActiveFit X2", Brand: "ActiveGear", Image: imgClearSound,
		Rating: 4.4, Reviews: 7890, Price: 1599, OriginalPrice: 2799, Discount: 43,
		Highlights: []string{"26H Battery", "Sweat Proof", "Ear Hooks"}, BatteryLife: 26,
	},
	{
		ID: "16", Name: "AudioMax Elite", Brand: "AudioTech", Image: imgBudZ,
		Rating: 4.8, Reviews: 2345, Price: 5499, OriginalPrice: 7999, Discount: 31,
		Highlights: []string{"55H Battery", "Studio ANC", "Lossless Audio"}, BatteryLife: 55,
		HasANC: true, HasWirelessCharging: true,
	},
}

// maxPrice stands in for the open top of the "Above ₹5,000" bucket.
const maxPrice = 1<<31 - 1

var seedPresets = domain.FilterPresets{
	Brands: []string{"AudioTech", "SoundWave", "EchoSound", "QuietZone", "ActiveGear"},
	PriceRanges: []domain.PriceRange{
		{Label: "Under ₹500", Min: 0, Max: 500},
		{Label: "₹500 - ₹1,000", Min: 500, Max: 1000},
		{Label: "₹1,000 - ₹2,000", Min: 1000, Max: 2000},
		{Label: "₹2,000 - ₹3,000", Min: 2000, Max: 3000},
		{Label: "₹3,000 - ₹5,000", Min: 3000, Max: 5000},
		{Label: "Above ₹5,000", Min: 5000, Max: maxPrice},
	},
	RatingFloors: []float64{4, 3, 2, 1},
	BatteryBands: []domain.BatteryBand{
		{Label: "50+ Hours", Min: 50},
		{Label: "30-50 Hours", Min: 30, Max: 50},
		{Label: "20-30 Hours", Min: 20, Max: 30},
		{Label: "Under 20 Hours", Min: 0, Max: 20},
	},
}
