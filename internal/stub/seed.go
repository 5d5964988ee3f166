package stub

import "github.com/linhqtruong/productcatalogmanager/internal/catalog"

// SampleProducts is the development seed data loaded into a fresh stub
// on startup.
func SampleProducts() []catalog.Product {
	return []catalog.Product{
		{Name: "UltraBook Pro 14", Brand: "Lenovra", Model: "UB14-2025", Retailer: "TechDepot", Price: 1299.99, Description: "14-inch ultrabook with 32GB RAM"},
		{Name: "UltraBook Pro 16", Brand: "Lenovra", Model: "UB16-2025", Retailer: "TechDepot", Price: 1599.00, Description: "16-inch ultrabook with discrete graphics"},
		{Name: "Aero Mouse", Brand: "Clickwell", Model: "AM-220", Retailer: "OfficeMart", Price: 24.95, Description: "Wireless ergonomic mouse"},
		{Name: "Aero Keyboard", Brand: "Clickwell", Model: "AK-310", Retailer: "OfficeMart", Price: 49.50, Description: "Low-profile mechanical keyboard"},
		{Name: "VisionMax Monitor 27", Brand: "Screenova", Model: "VM27-QHD", Retailer: "TechDepot", Price: 329.00, Description: "27-inch QHD IPS monitor"},
		{Name: "VisionMax Monitor 32", Brand: "Screenova", Model: "VM32-4K", Retailer: "MegaShop", Price: 549.99, Description: "32-inch 4K monitor"},
		{Name: "SoundPod Mini", Brand: "Audine", Model: "SP-M1", Retailer: "MegaShop", Price: 79.99, Description: "Portable bluetooth speaker"},
		{Name: "SoundPod Max", Brand: "Audine", Model: "SP-X2", Retailer: "MegaShop", Price: 199.99, Description: "Room-filling bluetooth speaker"},
		{Name: "ChargeHub 65W", Brand: "Voltix", Model: "CH-65", Retailer: "OfficeMart", Price: 39.00, Description: "GaN USB-C charger"},
		{Name: "ChargeHub 100W", Brand: "Voltix", Model: "CH-100", Retailer: "TechDepot", Price: 69.00, Description: "Dual-port GaN USB-C charger"},
		{Name: "TrailCam X", Brand: "", Model: "TCX-1", Retailer: "OutdoorPlus", Price: 149.00, Description: "Weatherproof trail camera of unknown provenance"},
		{Name: "DeskLamp Glow", Brand: "Lumara", Model: "DL-G2", Retailer: "OfficeMart", Price: 34.50, Description: "Dimmable LED desk lamp"},
	}
}
