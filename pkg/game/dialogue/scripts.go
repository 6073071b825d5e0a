package dialogue

// Speaker names
const (
	Marice   = "Marice"
	Alice    = "Alice"
	Olive    = "Olive"
	Beatrice = "Beatrice"
)

// Scripts is the registry of every dialogue script in the game,
// keyed by the script names referenced from floor data and the
// interaction logic.
var Scripts = map[string]Script{

	// Intro, played once at the start of a new game
	"intro": {
		{Marice, "My three girls are hiding again... I better find them before dinner gets cold!"},
		{Marice, "Alice, Olive, Beatrice, where are you? Let me check the house."},
		{Marice, "I should check the front entry first. That house rules plaque might have something useful..."},
	},

	// Alice, dining room cat tree
	"alice_before": {
		{Alice, "Oh, it's you. I was having the most wonderful nap on my tree, and you just HAD to come bother me."},
		{Marice, "Alice, sweetie, I just want to say hi! Can you help me find the others? I know Olive and Beatrice are hiding somewhere..."},
		{Alice, "Hmm. I don't work for free, Marice. Bring me some Purrpops treats and MAYBE I'll remember something useful."},
	},
	"alice_wrong_item": {
		{Marice, "Here, Alice! I brought you something yummy, a plate of Shrimp & Salmon Feast!"},
		{Alice, "Excuse me? Do I LOOK like a wet food cat? That slimy stuff is beneath me."},
		{Alice, "I said PURRPOPS. The crunchy ones. Don't come back without them."},
	},
	"alice_after": {
		{Marice, "Here you go, Alice, fresh Purrpops just for you!"},
		{Alice, "*crunch crunch* ...Acceptable. Fine, I'll tell you a secret since you've been adequate."},
		{Alice, "Check under the blanket on the sofa in the living room. There's a key there. You'll need it for the basement."},
	},
	"alice_done": {
		{Alice, "*yawn* I already told you about the key. Under the blanket. On the sofa."},
		{Marice, "Thanks, Alice. You're the best!"},
		{Alice, "Obviously. Now let me nap."},
	},

	// Olive, basement rec room, under the treadmill
	"olive_before": {
		{Marice, "Olive?! Is that you under the treadmill? What are you doing down here, you little gremlin?"},
		{Olive, "*peeking out* Shh! I'm hiding. This is my secret lair. Nobody can find me here... except you apparently."},
		{Olive, "Look, if you want me to come out, you gotta bring me the good stuff. PURRPOPS. The crunchy ones. Go!"},
	},
	"olive_wrong_item": {
		{Marice, "Olive, I brought you a Shrimp & Salmon Feast! Doesn't that sound fancy?"},
		{Olive, "*sniff sniff* ...Nope. Nuh-uh. That's BEATRICE food. I'm a Purrpops girl."},
		{Olive, "Go back to the kitchen and get the RIGHT treats. I'll wait. I'm very patient. *tail swish*"},
	},
	"olive_after": {
		{Marice, "Purrpops delivery for the gremlin under the treadmill!"},
		{Olive, "*ZOOM* GIMME GIMME GIMME! *cronch cronch* Oh these are SO good. You're my favorite human today."},
		{Olive, "Here, take this laundry basket I found. There's a big pile of laundry blocking the stairs, this should help you clear it!"},
	},
	"olive_done": {
		{Olive, "*rolling on floor* Those Purrpops hit different down here in the basement."},
		{Marice, "You're ridiculous, Olive."},
		{Olive, "Ridiculously CUTE, you mean. Now go find Beatrice! She's upstairs being dramatic as usual."},
	},

	// Beatrice, upstairs guest bedroom, under the blanket
	"beatrice_before": {
		{Marice, "Beatrice? Is that a lump under the blanket, or is that you, sweet girl?"},
		{Beatrice, "*muffled* Go away. I'm a blanket now. Blankets don't need to socialize."},
		{Beatrice, "...Unless you bring me a plate of Shrimp & Salmon Feast. Then MAYBE this blanket will consider emerging."},
	},
	"beatrice_wrong_item": {
		{Marice, "Beatrice, I have Purrpops! Want some treats?"},
		{Beatrice, "*disgusted blanket noises* Purrpops?! Those dry little pebbles? I am a cat of REFINED taste."},
		{Beatrice, "Shrimp & Salmon Feast. On a plate. Like a civilized meal. That is my price for emerging from this cocoon."},
	},
	"beatrice_after": {
		{Marice, "One plate of Shrimp & Salmon Feast, served with love for my most dramatic princess!"},
		{Beatrice, "*emerges majestically* ...It smells divine. You may watch me eat, but do not speak."},
		{Beatrice, "*purring intensely* ...Fine. Come here. You've earned a snuggle. But tell no one about this moment of weakness."},
	},

	// Kitchen and dining room
	"fridge": {
		{Marice, "The fridge is stocked. Tuna cans, cream, and a questionable number of Purrpops."},
	},
	"stove": {
		{Marice, "The stovetop is still warm. Salmon night was a hit."},
	},
	"kitchen_sink": {
		{Marice, "Dishes soaking. Cat bowls get priority in this house."},
	},
	"coffee_station": {
		{Marice, "Fresh brew on standby. Herding three cats requires caffeine."},
	},
	"dining_table": {
		{Marice, "Table's set and ready. Just keep the cats off the centerpiece."},
	},
	"cupboard_empty": {
		{Marice, "Nothing in here but some old mugs and a suspicious amount of cat hair."},
	},
	"cupboard_purrpops": {
		{Marice, "Purrpops! The cats go absolutely feral for these crunchy little treats."},
	},
	"cupboard_feast": {
		{Marice, "A can of Shrimp & Salmon Feast wet food! Fancy stuff. Let me plate this up nicely."},
	},
	"china_cabinet": {
		{Marice, "Fancy dishes behind glass. The cats are banned from this area."},
	},
	"sliding_door": {
		{Marice, "The sliding door is shut tight for now. The girls stay indoors where it's safe."},
	},

	// Living room
	"sofa_blanket": {
		{Marice, "There's something lumpy under this blanket... Oh! It's a key! Must be the Basement Key."},
	},
	"sofa_blanket_empty": {
		{Marice, "Just a cozy sofa with a rumpled blanket. Smells faintly of cat."},
	},
	"tv": {
		{Marice, "Paused on a loop of bird videos. Quality enrichment programming."},
	},
	"floor_lamp": {
		{Marice, "Soft light, cozy vibe. Perfect for an evening of cat cuddles."},
	},
	"coffee_table": {
		{Marice, "Tiny paw prints in the dust. Evidence of unauthorized zoomies."},
	},
	"bookshelf": {
		{Marice, "A whole shelf of cat behavior books. The girls clearly haven't read them."},
	},
	"coat_rack": {
		{Marice, "Coats and scarves hanging here. Ready for any weather."},
	},
	"plant": {
		{Marice, "A nice potted plant. So far the cats haven't knocked it over. So far."},
	},
	"reading_chair": {
		{Marice, "A cozy reading chair. Alice claims it during the day."},
	},
	"side_table": {
		{Marice, "Side table with a reading lamp. Good vibes only."},
	},

	// Half-bath
	"bathroom_mirror": {
		{Marice, "Mirror's a bit foggy. Someone took a steamy shower recently."},
	},
	"towel_rack": {
		{Marice, "Fresh towels hanging neatly. Cat-approved softness."},
	},

	// Doors and stairs
	"basement_door_locked": {
		{Marice, "The basement door is locked. I need a key to open it."},
	},
	"basement_door_unlock": {
		{Marice, "The Basement Key fits! *click* The door swings open. Time to explore downstairs."},
	},
	"laundry_pile_blocked": {
		{Marice, "There's a massive pile of laundry blocking the stairs. I need something to carry all this in..."},
	},
	"laundry_pile_clear": {
		{Marice, "Let me scoop all this laundry into the basket... There! The way upstairs is clear now!"},
	},

	// Basement
	"futon": {
		{Marice, "A comfy futon. I can see cat claw marks all over it. Classic."},
	},
	"weights": {
		{Marice, "Free weights. I should use these more... after finding all the cats."},
	},
	"washer": {
		{Marice, "Washing machine. Always running in a house with three cats."},
	},
	"cleaning_supplies": {
		{Marice, "Cleaning supplies. Cat hair removal is a full-time job."},
	},
	"storage_box": {
		{Marice, "Storage boxes full of seasonal decorations and memories."},
	},
	"tool_bench": {
		{Marice, "Tool bench with various DIY supplies. For those home improvement days."},
	},
	"water_heater": {
		{Marice, "Water heater humming quietly. Keeping things warm and cozy."},
	},

	// Upstairs
	"guest_dresser": {
		{Marice, "Guest room dresser. Beatrice has claimed the top as her throne."},
	},
	"wardrobe": {
		{Marice, "Large wardrobe. Sometimes a cat sneaks in and takes a nap."},
	},
	"filing_cabinet": {
		{Marice, "Filing cabinet full of important documents. Organized and secure."},
	},
	"printer": {
		{Marice, "Printer ready for action. Paper jam? Not today!"},
	},
	"bathroom_cabinet": {
		{Marice, "Bathroom cabinet with towels and toiletries. All organized."},
	},
	"towel_warmer": {
		{Marice, "Heated towel rack. Luxury living with warm towels after a shower."},
	},
	"bathroom_scale": {
		{Marice, "Bathroom scale. The cats weigh themselves sometimes. It's adorable."},
	},

	// Outside
	"outside_riddle_board": {
		{Marice, "A plaque by the door reads:"},
		{Marice, "\"There are three cats and one of you. Find the three cats then there'll be four of you.\""},
	},
	"front_door_locked": {
		{Marice, "The front door is locked with a number pad."},
		{Marice, "It wants a four-digit code. There are three cats and one of you; find the three cats then there'll be four of you."},
		{Marice, "Hint to self: the code is hidden in the riddle."},
	},
	"welcome_mat": {
		{Marice, "A cozy welcome mat that says 'Home is where the cats are.' Ain't that the truth."},
	},
	"porch_light": {
		{Marice, "The porch light is on. At least I can see the keypad clearly."},
	},
	"flower_bed": {
		{Marice, "Pretty flowers. They brighten the doorway without getting in the cats' way."},
	},
	"bird_bath": {
		{Marice, "A stone bird bath. The cats would sit by the window and watch the birds for hours."},
	},
	"mailbox": {
		{Marice, "Just bills and a cat food catalog. At least the priorities are right."},
	},
	"garden_gnome": {
		{Marice, "A cheerful garden gnome. Olive knocked it over twice last week."},
	},
	"garden_bench": {
		{Marice, "A sturdy bench for taking off shoes before heading inside."},
	},

	// Cat toy collectibles
	"cat_toy_jingle_ball": {
		{Marice, "Oh! A jingle ball hidden under here! The cats must have batted it around everywhere."},
		{Marice, "This was Olive's favorite toy. She used to chase it up and down the hallway at 3 AM."},
	},
	"cat_toy_feather_wand": {
		{Marice, "A feather wand toy tucked behind the boxes! This one's been missing for weeks."},
		{Marice, "Alice goes absolutely wild for this thing. She'll do backflips trying to catch it."},
	},
	"cat_toy_laser_pointer": {
		{Marice, "The laser pointer! It was in the drawer this whole time!"},
		{Marice, "Beatrice pretends she's too dignified to chase the dot... but she always does."},
	},
	"cat_toy_found": {
		{Marice, "I already found a toy here. The cats will be so happy later!"},
	},
}

// CatScript returns the script key for a cat and interaction phase,
// e.g. CatScript("alice", "before") == "alice_before".
func CatScript(cat, phase string) string {
	return cat + "_" + phase
}
