package seed

import "voyager-gear/internal/domain"

// Products returns the sample catalog, grouped by category.
func Products() []*domain.Product {
	return []*domain.Product{
		// luggage
		product("Rolling Hardside Spinner Large",
			"Durable hardside luggage with 360° spinner wheels. TSA-approved lock, expandable design, and scratch-resistant finish. Perfect for long trips.",
			"249.99", domain.CategoryLuggage, "https://images.unsplash.com/photo-1565026057447-bc90a3dceb87?w=800", 25),
		product("Carry-On Hardshell Suitcase",
			"Lightweight carry-on with polycarbonate shell. Fits in overhead compartments. Interior compression straps and zippered divider.",
			"149.99", domain.CategoryLuggage, "https://images.unsplash.com/photo-1596969490001-f4e29c3e1a99?w=800", 40),
		product("Travel Duffel Bag Large",
			"Water-resistant polyester duffel with adjustable shoulder strap. Multiple compartments including shoe pocket. Ideal for weekend getaways.",
			"89.99", domain.CategoryLuggage, "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800", 30),
		product("Vintage Leather Suitcase",
			"Premium full-grain leather suitcase with brass hardware. Vintage-inspired design meets modern functionality. Lined interior with pockets.",
			"399.99", domain.CategoryLuggage, "https://images.unsplash.com/photo-1596194292724-9ca8389e2af5?w=800", 15),
		product("Kids Rolling Backpack",
			"Colorful rolling backpack for children. Telescopic handle, padded back straps for versatile carrying. Fun patterns and durable construction.",
			"79.99", domain.CategoryLuggage, "https://images.unsplash.com/photo-1546938576-6e6a64f317cc?w=800", 20),
		product("Soft-Sided Expandable Luggage",
			"Versatile soft-sided luggage with expandable capacity. Four multi-directional spinner wheels. Interior organization pockets.",
			"179.99", domain.CategoryLuggage, "https://images.unsplash.com/photo-1585146777216-d05f72ce1ed5?w=800", 35),
		product("Aluminum Frame Suitcase Pro",
			"Professional aluminum-frame suitcase with reinforced corners. Premium quality for frequent travelers. Lifetime warranty included.",
			"449.99", domain.CategoryLuggage, "https://images.unsplash.com/photo-1591791068607-ee346a55d47e?w=800", 12),
		product("Garment Bag Travel Suit Carrier",
			"Tri-fold garment bag for suits and dresses. Water-resistant nylon with multiple pockets. Keeps clothes wrinkle-free during travel.",
			"69.99", domain.CategoryLuggage, "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800", 18),
		product("Checked Luggage Extra Large",
			"Extra-large checked luggage for extended trips. 32-inch height, expandable design adds 2 inches. Reinforced handle system.",
			"199.99", domain.CategoryLuggage, "https://images.unsplash.com/photo-1584735935682-2f2b69dff9d2?w=800", 22),
		product("Underseat Carry-On Tote",
			"Compact tote designed to fit under airplane seats. Multiple interior and exterior pockets. Perfect for essentials and electronics.",
			"49.99", domain.CategoryLuggage, "https://images.unsplash.com/photo-1574662875393-2e4c0e44cc13?w=800", 45),
		product("Hybrid Spinner Luggage Set",
			"3-piece luggage set with matching design. Includes carry-on, medium, and large sizes. Nested storage saves space at home.",
			"399.99", domain.CategoryLuggage, "https://images.unsplash.com/photo-1590003124022-424c5a026422?w=800", 10),
		product("Wheeled Backpack Convertible",
			"2-in-1 convertible backpack with detachable wheels. Laptop compartment and USB charging port. Airport security friendly.",
			"129.99", domain.CategoryLuggage, "https://images.unsplash.com/photo-1581553680321-4aadc7c23b7a?w=800", 28),
		product("Travel Trunk Vintage Style",
			"Steamer trunk inspired design with modern features. Perfect for cruise ships and vintage enthusiasts. Spacious interior with tray.",
			"299.99", domain.CategoryLuggage, "https://images.unsplash.com/photo-1604482423767-1bf5d6a2e566?w=800", 8),
		product("Lightweight Carry-On Spinner",
			"Ultra-lightweight carry-on weighing only 5.5 lbs. Maximizes your carry-on weight allowance. Durable construction despite low weight.",
			"139.99", domain.CategoryLuggage, "https://images.unsplash.com/photo-1589975876563-18d8a87e8c7e?w=800", 32),
		product("Business Rolling Briefcase",
			"Professional rolling briefcase with laptop compartment. Fits up to 17-inch laptop. Organized pockets for documents and accessories.",
			"189.99", domain.CategoryLuggage, "https://images.unsplash.com/photo-1622560480605-d83c853bc5c3?w=800", 16),

		// bags
		product("Travel Backpack 40L",
			"Versatile 40L travel backpack with laptop sleeve. Carry-on compliant size. Multiple access points and compression straps.",
			"119.99", domain.CategoryBags, "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800", 50),
		product("Crossbody Travel Bag",
			"Anti-theft crossbody bag with RFID blocking pockets. Slash-proof construction and lockable zippers. Compact yet spacious.",
			"59.99", domain.CategoryBags, "https://images.unsplash.com/photo-1590874103328-eac38a683ce7?w=800", 60),
		product("Weekender Overnight Bag",
			"Stylish weekender bag in faux leather. Separate shoe compartment and trolley sleeve. Perfect size for 2-3 day trips.",
			"89.99", domain.CategoryBags, "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800", 35),
		product("Gym Duffle with Shoe Compartment",
			"Spacious gym duffle with ventilated shoe compartment. Water-resistant bottom. Adjustable shoulder strap and grab handles.",
			"49.99", domain.CategoryBags, "https://images.unsplash.com/photo-1571781926291-c477ebfd024b?w=800", 42),
		product("Messenger Bag Canvas",
			"Classic canvas messenger bag with leather accents. Padded laptop sleeve fits 15-inch. Adjustable shoulder strap.",
			"79.99", domain.CategoryBags, "https://images.unsplash.com/photo-1573873911207-4817d5d00e4d?w=800", 38),
		product("Hiking Daypack 25L",
			"Lightweight daypack perfect for hiking and day trips. Breathable back panel, hydration compatible. Multiple attachment points.",
			"69.99", domain.CategoryBags, "https://images.unsplash.com/photo-1560174038-da43ac36a6b3?w=800", 45),
		product("Laptop Messenger Bag Professional",
			"Professional leather messenger bag for business travelers. Organized compartments for laptop, tablet, and documents.",
			"139.99", domain.CategoryBags, "https://images.unsplash.com/photo-1566150905458-1bf1fc113f0d?w=800", 28),
		product("Foldable Tote Bag",
			"Ultra-light foldable tote that packs into itself. Perfect backup bag for shopping or beach. Water-resistant nylon.",
			"24.99", domain.CategoryBags, "https://images.unsplash.com/photo-1590874103328-eac38a683ce7?w=800", 70),
		product("Camera Backpack with Tripod Holder",
			"Photographer's backpack with customizable dividers. Weather-resistant with rain cover. Tripod holder and quick-access side pocket.",
			"159.99", domain.CategoryBags, "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800", 22),
		product("Convertible Laptop Backpack",
			"3-way convertible: backpack, briefcase, or messenger. TSA-friendly laptop compartment. USB charging port included.",
			"99.99", domain.CategoryBags, "https://images.unsplash.com/photo-1585916420730-d7f95e942d43?w=800", 34),
		product("Toiletry Bag Hanging",
			"Hanging toiletry bag with multiple compartments. Clear pockets for easy TSA screening. Hook for hanging in bathrooms.",
			"34.99", domain.CategoryBags, "https://images.unsplash.com/photo-1586796676746-f15ab6c527f9?w=800", 55),
		product("Sling Bag Anti-Theft",
			"Compact sling bag worn across chest. RFID protection and hidden pockets. Perfect for urban travel and commuting.",
			"44.99", domain.CategoryBags, "https://images.unsplash.com/photo-1590874103328-eac38a683ce7?w=800", 48),
		product("Beach Bag Waterproof",
			"Large waterproof beach bag with zipper closure. Sand-resistant bottom. Multiple interior pockets for organization.",
			"39.99", domain.CategoryBags, "https://images.unsplash.com/photo-1590874103328-eac38a683ce7?w=800", 52),
		product("Business Laptop Backpack",
			"Sleek business backpack with dedicated laptop and tablet compartments. Professional design suitable for office or travel.",
			"109.99", domain.CategoryBags, "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800", 40),
		product("Packable Daypack",
			"Lightweight daypack that folds into its own pocket. Perfect for hiking, biking, or as an extra carry-on. Ultra-durable ripstop.",
			"29.99", domain.CategoryBags, "https://images.unsplash.com/photo-1560174038-da43ac36a6b3?w=800", 65),

		// travel accessories
		product("Travel Pillow Memory Foam",
			"Ergonomic memory foam travel pillow with removable, washable cover. Provides neck support on planes, trains, and cars.",
			"29.99", domain.CategoryTravelAccessories, "https://images.unsplash.com/photo-1545987796-b199d6abb1b4?w=800", 80),
		product("Packing Cubes Set of 6",
			"Complete packing cube set in various sizes. Mesh top for visibility. Compresses clothes and keeps luggage organized.",
			"34.99", domain.CategoryTravelAccessories, "https://images.unsplash.com/photo-1600375739012-c09e0fef4b4e?w=800", 100),
		product("Luggage Scale Digital",
			"Compact digital luggage scale with 110 lb capacity. Avoid overweight baggage fees. Backlit display and auto-off function.",
			"14.99", domain.CategoryTravelAccessories, "https://images.unsplash.com/photo-1566140967404-b8b3932483f5?w=800", 90),
		product("Travel Adapter Universal",
			"All-in-one travel adapter works in 150+ countries. Includes USB-A and USB-C ports. Built-in surge protection.",
			"39.99", domain.CategoryTravelAccessories, "https://images.unsplash.com/photo-1591290619762-e02c4e82e3fe?w=800", 75),
		product("Compression Socks Travel",
			"Compression socks for long flights. Improves circulation and reduces swelling. Available in multiple sizes and colors.",
			"19.99", domain.CategoryTravelAccessories, "https://images.unsplash.com/photo-1586202696648-d8f0e0e5b9d4?w=800", 120),
		product("RFID Blocking Passport Holder",
			"Genuine leather passport holder with RFID blocking. Multiple card slots and document pockets. Protects against identity theft.",
			"24.99", domain.CategoryTravelAccessories, "https://images.unsplash.com/photo-1505682634904-d7c8d95cdc50?w=800", 85),
		product("Portable Luggage Lock TSA Approved",
			"4-digit combination TSA-approved locks (set of 4). TSA agents can open without breaking. Includes reset instructions.",
			"16.99", domain.CategoryTravelAccessories, "https://images.unsplash.com/photo-1584460540867-d4b0091f3f7d?w=800", 110),
		product("Shoe Bags for Travel",
			"Waterproof shoe bags with drawstring closure (set of 4). Separates shoes from clean clothes. Transparent window for easy identification.",
			"12.99", domain.CategoryTravelAccessories, "https://images.unsplash.com/photo-1600375739012-c09e0fef4b4e?w=800", 95),
		product("Reusable Silicone Travel Bottles",
			"TSA-approved silicone travel bottles for toiletries (set of 6). Leak-proof design. Wide opening for easy filling.",
			"18.99", domain.CategoryTravelAccessories, "https://images.unsplash.com/photo-1556228720-195a672e8a03?w=800", 88),
		product("Travel Blanket and Pillow Set",
			"Compact travel blanket and pillow set in carrying pouch. Soft fleece material. Perfect for flights and road trips.",
			"44.99", domain.CategoryTravelAccessories, "https://images.unsplash.com/photo-1545987796-b199d6abb1b4?w=800", 62),
		product("Portable Door Lock",
			"Portable security door lock for hotels and Airbnb. Easy installation without tools. Peace of mind while traveling.",
			"21.99", domain.CategoryTravelAccessories, "https://images.unsplash.com/photo-1584460540867-d4b0091f3f7d?w=800", 72),
		product("Microfiber Travel Towel Set",
			"Quick-dry microfiber towel set (large and small). Super absorbent and compact. Comes with carrying pouch.",
			"27.99", domain.CategoryTravelAccessories, "https://images.unsplash.com/photo-1604522064454-07e2cd784a99?w=800", 78),

		// digital nomad
		product("Laptop Stand Portable Aluminum",
			"Adjustable laptop stand folds flat for travel. Compatible with laptops up to 17 inches. Improves posture and airflow.",
			"49.99", domain.CategoryDigitalNomad, "https://images.unsplash.com/photo-1587614382346-4ec70e388b28?w=800", 55),
		product("Wireless Bluetooth Mouse",
			"Compact wireless mouse with silent clicking. Works on any surface. Long battery life and auto-sleep function.",
			"24.99", domain.CategoryDigitalNomad, "https://images.unsplash.com/photo-1527814050087-3793815479db?w=800", 92),
		product("Portable Monitor 15.6 inch",
			"USB-C portable monitor for dual-screen setup anywhere. Full HD IPS display. Includes protective case.",
			"199.99", domain.CategoryDigitalNomad, "https://images.unsplash.com/photo-1527443224154-c4a3942d3acf?w=800", 35),
		product("Noise Cancelling Headphones",
			"Over-ear noise cancelling headphones with 30-hour battery. Perfect for working in cafes or coworking spaces.",
			"179.99", domain.CategoryDigitalNomad, "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=800", 48),
		product("Power Bank 20000mAh",
			"High-capacity power bank with fast charging. Charges phone 4-6 times. Multiple USB ports for charging multiple devices.",
			"49.99", domain.CategoryDigitalNomad, "https://images.unsplash.com/photo-1609091839311-d5365f9ff1c5?w=800", 70),
		product("Mechanical Keyboard Compact",
			"60% compact mechanical keyboard. Bluetooth and wired connectivity. Portable without sacrificing typing experience.",
			"89.99", domain.CategoryDigitalNomad, "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=800", 42),
		product("Webcam 1080p HD",
			"HD webcam with autofocus and low-light correction. Built-in microphone. Perfect for video calls while traveling.",
			"69.99", domain.CategoryDigitalNomad, "https://images.unsplash.com/photo-1588421357574-87938a86fa28?w=800", 58),
		product("Cable Organizer Kit",
			"Complete cable management solution for digital nomads. Multiple pouches and elastic bands. Keeps tech gear organized.",
			"22.99", domain.CategoryDigitalNomad, "https://images.unsplash.com/photo-1591290619762-e02c4e82e3fe?w=800", 105),
		product("Ergonomic Wireless Keyboard and Mouse",
			"Ergonomic keyboard and mouse combo. Wireless connectivity with single USB receiver. Designed for all-day comfort.",
			"79.99", domain.CategoryDigitalNomad, "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=800", 64),
		product("USB-C Hub 7-in-1",
			"7-in-1 USB-C hub with HDMI, USB 3.0, SD card reader, and Ethernet. Essential for laptops with limited ports.",
			"44.99", domain.CategoryDigitalNomad, "https://images.unsplash.com/photo-1625948515291-69613efd103f?w=800", 82),
		product("Blue Light Blocking Glasses",
			"Computer glasses that block blue light. Reduces eye strain during long work sessions. Stylish lightweight frame.",
			"29.99", domain.CategoryDigitalNomad, "https://images.unsplash.com/photo-1577803645773-f96470509666?w=800", 76),
		product("Phone Stand Adjustable",
			"Adjustable phone and tablet stand. Sturdy aluminum construction. Perfect for video calls or watching content.",
			"19.99", domain.CategoryDigitalNomad, "https://images.unsplash.com/photo-1598327105666-5b89351aff97?w=800", 88),
		product("Laptop Sleeve 13-14 inch",
			"Padded laptop sleeve with extra pocket for accessories. Water-resistant exterior. Slim design fits in backpacks.",
			"34.99", domain.CategoryDigitalNomad, "https://images.unsplash.com/photo-1601524909162-ae8725290836?w=800", 95),
	}
}
