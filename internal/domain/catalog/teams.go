package catalog

// teams is the built-in profile table: 20 soccer clubs ranked by combined
// league and Champions League form, 12 NBA teams by conference standings,
// and 12 NFL teams by regular-season seeding. Ranks are per league.
var teams = []TeamProfile{
	// Soccer
	{Name: "Arsenal", Rank: 1, Strength: 96, RecentForm: 10, KeyPlayers: []string{"Bukayo Saka", "Martin Ødegaard", "Viktor Gyökeres"}},
	{Name: "Barcelona", Rank: 2, Strength: 95, RecentForm: 9, KeyPlayers: []string{"Lamine Yamal", "Robert Lewandowski", "Dani Olmo"}},
	{Name: "Real Madrid", Rank: 3, Strength: 94, RecentForm: 8, KeyPlayers: []string{"Kylian Mbappé", "Vinícius Jr.", "Jude Bellingham"}},
	{Name: "Manchester City", Rank: 4, Strength: 92, RecentForm: 6, KeyPlayers: []string{"Erling Haaland", "Phil Foden", "Rodri"}},
	{Name: "Liverpool", Rank: 5, Strength: 91, RecentForm: 7, KeyPlayers: []string{"Mohamed Salah", "Virgil van Dijk", "Luis Díaz"}},
	{Name: "Bayern Munich", Rank: 6, Strength: 93, RecentForm: 8, KeyPlayers: []string{"Harry Kane", "Jamal Musiala", "Joshua Kimmich"}},
	{Name: "Inter Milan", Rank: 7, Strength: 90, RecentForm: 5, KeyPlayers: []string{"Lautaro Martínez", "Marcus Thuram", "Nicolò Barella"}},
	{Name: "Paris Saint-Germain", Rank: 8, Strength: 89, RecentForm: 7, KeyPlayers: []string{"Ousmane Dembélé", "Vitinha", "Bradley Barcola"}},
	{Name: "Aston Villa", Rank: 9, Strength: 88, RecentForm: 7, KeyPlayers: []string{"Ollie Watkins", "Morgan Rogers", "Emiliano Martínez"}},
	{Name: "Atletico Madrid", Rank: 10, Strength: 87, RecentForm: 9, KeyPlayers: []string{"Antoine Griezmann", "Julián Álvarez", "Conor Gallagher"}},
	{Name: "Manchester United", Rank: 11, Strength: 86, RecentForm: 8, KeyPlayers: []string{"Bruno Fernandes", "Alejandro Garnacho", "Kobbie Mainoo"}},
	{Name: "Chelsea", Rank: 12, Strength: 85, RecentForm: 8, KeyPlayers: []string{"Cole Palmer", "Nicolas Jackson", "Moisés Caicedo"}},
	{Name: "Tottenham", Rank: 13, Strength: 84, RecentForm: 6, KeyPlayers: []string{"Heung-min Son", "James Maddison", "Micky van de Ven"}},
	{Name: "Juventus", Rank: 14, Strength: 84, RecentForm: 8, KeyPlayers: []string{"Kenan Yıldız", "Dušan Vlahović", "Teun Koopmeiners"}},
	{Name: "Borussia Dortmund", Rank: 15, Strength: 83, RecentForm: 7, KeyPlayers: []string{"Serhou Guirassy", "Julian Brandt", "Nico Schlotterbeck"}},
	{Name: "Sevilla", Rank: 16, Strength: 78, RecentForm: 5, KeyPlayers: []string{"Isaac Romero", "Loïc Badé", "Dodi Lukebakio"}},
	{Name: "Napoli", Rank: 17, Strength: 82, RecentForm: 6, KeyPlayers: []string{"Khvicha Kvaratskhelia", "Romelu Lukaku", "Scott McTominay"}},
	{Name: "Villarreal", Rank: 18, Strength: 80, RecentForm: 4, KeyPlayers: []string{"Ayoze Pérez", "Álex Baena", "Thierno Barry"}},
	{Name: "Brentford", Rank: 19, Strength: 79, RecentForm: 6, KeyPlayers: []string{"Bryan Mbeumo", "Yoane Wissa", "Mikkel Damsgaard"}},
	{Name: "Everton", Rank: 20, Strength: 77, RecentForm: 7, KeyPlayers: []string{"Dominic Calvert-Lewin", "Dwight McNeil", "Jordan Pickford"}},

	// NBA
	{Name: "Oklahoma City Thunder", Rank: 1, Strength: 96, RecentForm: 7, KeyPlayers: []string{"Shai Gilgeous-Alexander", "Chet Holmgren", "Jalen Williams"}},
	{Name: "Detroit Pistons", Rank: 2, Strength: 92, RecentForm: 8, KeyPlayers: []string{"Cade Cunningham", "Jaden Ivey", "Tobias Harris"}},
	{Name: "San Antonio Spurs", Rank: 3, Strength: 90, RecentForm: 6, KeyPlayers: []string{"Victor Wembanyama", "Chris Paul", "Devin Vassell"}},
	{Name: "Denver Nuggets", Rank: 4, Strength: 91, RecentForm: 7, KeyPlayers: []string{"Nikola Jokić", "Jamal Murray", "Aaron Gordon"}},
	{Name: "Boston Celtics", Rank: 5, Strength: 94, RecentForm: 6, KeyPlayers: []string{"Jayson Tatum", "Jaylen Brown", "Derrick White"}},
	{Name: "Toronto Raptors", Rank: 6, Strength: 88, RecentForm: 6, KeyPlayers: []string{"Scottie Barnes", "RJ Barrett", "Immanuel Quickley"}},
	{Name: "New York Knicks", Rank: 7, Strength: 89, RecentForm: 4, KeyPlayers: []string{"Jalen Brunson", "Karl-Anthony Towns", "Josh Hart"}},
	{Name: "Houston Rockets", Rank: 8, Strength: 87, RecentForm: 6, KeyPlayers: []string{"Alperen Şengün", "Jalen Green", "Fred VanVleet"}},
	{Name: "Los Angeles Lakers", Rank: 9, Strength: 86, RecentForm: 5, KeyPlayers: []string{"Anthony Davis", "LeBron James", "Austin Reaves"}},
	{Name: "Cleveland Cavaliers", Rank: 10, Strength: 87, RecentForm: 7, KeyPlayers: []string{"Donovan Mitchell", "Evan Mobley", "Darius Garland"}},
	{Name: "Phoenix Suns", Rank: 11, Strength: 88, RecentForm: 6, KeyPlayers: []string{"Kevin Durant", "Devin Booker", "Bradley Beal"}},
	{Name: "Golden State Warriors", Rank: 12, Strength: 85, RecentForm: 6, KeyPlayers: []string{"Stephen Curry", "Draymond Green", "Buddy Hield"}},

	// NFL
	{Name: "Seattle Seahawks", Rank: 1, Strength: 97, RecentForm: 10, KeyPlayers: []string{"Sam Darnold", "Kenneth Walker III", "DK Metcalf"}},
	{Name: "Denver Broncos", Rank: 2, Strength: 94, RecentForm: 8, KeyPlayers: []string{"Bo Nix", "Courtland Sutton", "Pat Surtain II"}},
	{Name: "New England Patriots", Rank: 3, Strength: 95, RecentForm: 9, KeyPlayers: []string{"Drake Maye", "Rhamondre Stevenson", "Christian Gonzalez"}},
	{Name: "Jacksonville Jaguars", Rank: 4, Strength: 91, RecentForm: 8, KeyPlayers: []string{"Trevor Lawrence", "Brian Thomas Jr.", "Josh Hines-Allen"}},
	{Name: "Houston Texans", Rank: 5, Strength: 90, RecentForm: 9, KeyPlayers: []string{"C.J. Stroud", "Nico Collins", "Will Anderson Jr."}},
	{Name: "San Francisco 49ers", Rank: 6, Strength: 92, RecentForm: 7, KeyPlayers: []string{"Brock Purdy", "Christian McCaffrey", "Deebo Samuel"}},
	{Name: "Buffalo Bills", Rank: 7, Strength: 93, RecentForm: 8, KeyPlayers: []string{"Josh Allen", "James Cook", "Khalil Shakir"}},
	{Name: "Chicago Bears", Rank: 8, Strength: 88, RecentForm: 6, KeyPlayers: []string{"Caleb Williams", "DJ Moore", "Rome Odunze"}},
	{Name: "Philadelphia Eagles", Rank: 9, Strength: 89, RecentForm: 7, KeyPlayers: []string{"Jalen Hurts", "Saquon Barkley", "A.J. Brown"}},
	{Name: "Pittsburgh Steelers", Rank: 10, Strength: 86, RecentForm: 6, KeyPlayers: []string{"Aaron Rodgers", "George Pickens", "T.J. Watt"}},
	{Name: "Detroit Lions", Rank: 11, Strength: 87, RecentForm: 7, KeyPlayers: []string{"Jared Goff", "Amon-Ra St. Brown", "Jahmyr Gibbs"}},
	{Name: "Green Bay Packers", Rank: 12, Strength: 85, RecentForm: 5, KeyPlayers: []string{"Jordan Love", "Josh Jacobs", "Jayden Reed"}},
}
