package activities

import "dreamtrip/models"

// starterCatalog is the seed set for a fresh deployment. Costs are USD per
// person estimates; zero means the price varies too much to quote.
var starterCatalog = []models.Activity{
	{Title: "Snorkeling at Blue Bay Marine Park", Category: "water", Location: "Blue Bay", Description: "Glass-bottom boat ride and snorkeling over coral gardens", CostEstimate: 35},
	{Title: "Catamaran Cruise to Ile aux Cerfs", Category: "water", Location: "Trou d'Eau Douce", Description: "Full-day cruise with BBQ lunch and lagoon swimming", CostEstimate: 65},
	{Title: "Dolphin Watching at Tamarin Bay", Category: "water", Location: "Tamarin", Description: "Early morning boat trip to swim with wild dolphins", CostEstimate: 45},
	{Title: "Kite Surfing at Le Morne", Category: "water", Location: "Le Morne", Description: "World-class kite spot with lessons for all levels", CostEstimate: 80},
	{Title: "Underwater Sea Walk", Category: "water", Location: "Grand Baie", Description: "Walk on the lagoon floor wearing a diving helmet", CostEstimate: 55},
	{Title: "Hike Le Morne Brabant", Category: "adventure", Location: "Le Morne", Description: "Guided sunrise hike up the UNESCO-listed mountain", CostEstimate: 40},
	{Title: "Black River Gorges Trek", Category: "adventure", Location: "Black River Gorges National Park", Description: "Rainforest trails with endemic birds and waterfall views", CostEstimate: 0},
	{Title: "Quad Biking in the South", Category: "adventure", Location: "Bel Ombre", Description: "Off-road quad circuit through sugarcane and nature reserve", CostEstimate: 70},
	{Title: "Ziplining at La Vallee des Couleurs", Category: "adventure", Location: "Chamouny", Description: "One of the longest ziplines in the Indian Ocean", CostEstimate: 50},
	{Title: "Tandem Skydive over the Lagoon", Category: "adventure", Location: "Mon Loisir", Description: "Freefall with views over the turquoise reef", CostEstimate: 300},
	{Title: "Seven Coloured Earths of Chamarel", Category: "nature", Location: "Chamarel", Description: "Geological dunes in seven colours plus Chamarel waterfall", CostEstimate: 10},
	{Title: "Pamplemousses Botanical Garden", Category: "nature", Location: "Pamplemousses", Description: "Giant water lilies and century-old palm collection", CostEstimate: 5},
	{Title: "Ile aux Aigrettes Eco Tour", Category: "nature", Location: "Mahebourg", Description: "Island reserve with giant tortoises and pink pigeons", CostEstimate: 30},
	{Title: "Casela Nature Park", Category: "nature", Location: "Cascavelle", Description: "Safari bus, big cats and Nepalese bridge canyon walk", CostEstimate: 35},
	{Title: "Tea Route at Bois Cheri", Category: "culture", Location: "Bois Cheri", Description: "Tea factory visit and tasting overlooking the south coast", CostEstimate: 20},
	{Title: "Aapravasi Ghat World Heritage Site", Category: "culture", Location: "Port Louis", Description: "Immigration depot telling the story of indentured labour", CostEstimate: 0},
	{Title: "Grand Bassin Sacred Lake", Category: "culture", Location: "Ganga Talao", Description: "Hindu temples around a crater lake with giant Shiva statue", CostEstimate: 0},
	{Title: "Port Louis Central Market Tour", Category: "culture", Location: "Port Louis", Description: "Street food and craft stalls in the capital's bazaar", CostEstimate: 15},
	{Title: "Eureka Colonial House", Category: "culture", Location: "Moka", Description: "Creole mansion museum with waterfall gardens", CostEstimate: 12},
	{Title: "Street Food Tour of Mahebourg", Category: "food", Location: "Mahebourg", Description: "Dholl puri, gateaux piments and local bazaar snacks", CostEstimate: 25},
	{Title: "Rum Distillery Tour at Rhumerie de Chamarel", Category: "food", Location: "Chamarel", Description: "Working distillery with tasting of agricole rums", CostEstimate: 18},
	{Title: "Creole Cooking Class", Category: "food", Location: "Flic en Flac", Description: "Market shopping and hands-on curry cooking with a local chef", CostEstimate: 60},
	{Title: "Sunset Dinner Cruise", Category: "food", Location: "Grand Baie", Description: "Lagoon cruise with seafood dinner and sega show", CostEstimate: 75},
	{Title: "Spa Day at Turtle Bay", Category: "relaxation", Location: "Balaclava", Description: "Beachfront spa rituals in the marine park bay", CostEstimate: 90},
	{Title: "Beach Day at Trou aux Biches", Category: "relaxation", Location: "Trou aux Biches", Description: "Calm shallow lagoon ideal for families", CostEstimate: 0},
	{Title: "Golf at Heritage Golf Club", Category: "relaxation", Location: "Bel Ombre", Description: "Championship course between mountains and ocean", CostEstimate: 120},
	{Title: "Sunset at Flic en Flac Beach", Category: "relaxation", Location: "Flic en Flac", Description: "West-coast sunset with casuarina-lined public beach", CostEstimate: 0},
}
