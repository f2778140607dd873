package models

// StarterItems is the catalog written into an empty items collection.
func StarterItems() []Item {
	return []Item{
		{ID: 1, Name: "Royal Enfield Classic 350", Type: "Cruiser", Price: 193000, Image: "Zclassic350.jpg"},
		{ID: 2, Name: "Bajaj Pulsar NS200", Type: "Street", Price: 158000, Image: "ZPulser NS200.jpg"},
		{ID: 3, Name: "TVS Apache RR 310", Type: "Sport", Price: 272000, Image: "ZApatchi RTR310.jpg"},
		{ID: 4, Name: "Hero Splendor Plus", Type: "Commuter", Price: 75000, Image: "https://5.imimg.com/data5/SELLER/Default/2023/9/342317924/BO/CH/WW/194639109/hero-splendor-plus-1000x1000.png"},
		{ID: 5, Name: "Jawa Perak", Type: "Bobber", Price: 213000, Image: "ZJawa.jpg"},
		{ID: 6, Name: "Yezdi Roadster", Type: "Cruiser", Price: 209000, Image: "https://images.timesdrive.in/photo/msid-151061276,thumbsize-100,width-175,height-85,resizemode-75/151061276.jpg"},
		{ID: 7, Name: "Royal Enfield Interceptor 650", Type: "Cruiser", Price: 333000, Image: "https://www.royalenfield.com/content/dam/royal-enfield/india/motorcycles/interceptor/new/colours/studio-shots/black-ray/black_ray_000.png"},
		{ID: 8, Name: "Yamaha FZ-S FI", Type: "Sport", Price: 163000, Image: "https://www.yamaha-motor-india.com/theme/v4/images/webp_images/fz_series_all/fzs-fi/fzs-fi-std.webp"},
		{ID: 9, Name: "Honda Hornet 2.0", Type: "Classic", Price: 180000, Image: "https://imgd.aeplcdn.com/1056x594/n/cw/ec/156227/hornet-right-side-view-2.png?isig=0&q=80&wm=3"},
	}
}
