package words

// French word bank. Grouped by difficulty, roughly easy objects and animals
// first, abstract or hard-to-draw entries last.
var bank = []WordEntry{
	{Word: "chat", Category: "animal", Difficulty: DIFFICULTY_FACILE},
	{Word: "chien", Category: "animal", Difficulty: DIFFICULTY_FACILE},
	{Word: "oiseau", Category: "animal", Difficulty: DIFFICULTY_FACILE},
	{Word: "poisson", Category: "animal", Difficulty: DIFFICULTY_FACILE},
	{Word: "lapin", Category: "animal", Difficulty: DIFFICULTY_FACILE},
	{Word: "cochon", Category: "animal", Difficulty: DIFFICULTY_FACILE},
	{Word: "vache", Category: "animal", Difficulty: DIFFICULTY_FACILE},
	{Word: "souris", Category: "animal", Difficulty: DIFFICULTY_FACILE},
	{Word: "canard", Category: "animal", Difficulty: DIFFICULTY_FACILE},
	{Word: "poule", Category: "animal", Difficulty: DIFFICULTY_FACILE},
	{Word: "mouton", Category: "animal", Difficulty: DIFFICULTY_FACILE},
	{Word: "abeille", Category: "animal", Difficulty: DIFFICULTY_FACILE},
	{Word: "maison", Category: "objet", Difficulty: DIFFICULTY_FACILE},
	{Word: "voiture", Category: "objet", Difficulty: DIFFICULTY_FACILE},
	{Word: "vélo", Category: "objet", Difficulty: DIFFICULTY_FACILE},
	{Word: "ballon", Category: "objet", Difficulty: DIFFICULTY_FACILE},
	{Word: "livre", Category: "objet", Difficulty: DIFFICULTY_FACILE},
	{Word: "chaise", Category: "objet", Difficulty: DIFFICULTY_FACILE},
	{Word: "table", Category: "objet", Difficulty: DIFFICULTY_FACILE},
	{Word: "lit", Category: "objet", Difficulty: DIFFICULTY_FACILE},
	{Word: "porte", Category: "objet", Difficulty: DIFFICULTY_FACILE},
	{Word: "fenêtre", Category: "objet", Difficulty: DIFFICULTY_FACILE},
	{Word: "clé", Category: "objet", Difficulty: DIFFICULTY_FACILE},
	{Word: "télévision", Category: "objet", Difficulty: DIFFICULTY_FACILE},
	{Word: "lampe", Category: "objet", Difficulty: DIFFICULTY_FACILE},
	{Word: "bougie", Category: "objet", Difficulty: DIFFICULTY_FACILE},
	{Word: "parapluie", Category: "objet", Difficulty: DIFFICULTY_FACILE},
	{Word: "chapeau", Category: "objet", Difficulty: DIFFICULTY_FACILE},
	{Word: "lunettes", Category: "objet", Difficulty: DIFFICULTY_FACILE},
	{Word: "montre", Category: "objet", Difficulty: DIFFICULTY_FACILE},
	{Word: "crayon", Category: "objet", Difficulty: DIFFICULTY_FACILE},
	{Word: "ciseaux", Category: "objet", Difficulty: DIFFICULTY_FACILE},
	{Word: "échelle", Category: "objet", Difficulty: DIFFICULTY_FACILE},
	{Word: "miroir", Category: "objet", Difficulty: DIFFICULTY_FACILE},
	{Word: "sac", Category: "objet", Difficulty: DIFFICULTY_FACILE},
	{Word: "soleil", Category: "nature", Difficulty: DIFFICULTY_FACILE},
	{Word: "lune", Category: "nature", Difficulty: DIFFICULTY_FACILE},
	{Word: "étoile", Category: "nature", Difficulty: DIFFICULTY_FACILE},
	{Word: "nuage", Category: "nature", Difficulty: DIFFICULTY_FACILE},
	{Word: "arbre", Category: "nature", Difficulty: DIFFICULTY_FACILE},
	{Word: "fleur", Category: "nature", Difficulty: DIFFICULTY_FACILE},
	{Word: "montagne", Category: "nature", Difficulty: DIFFICULTY_FACILE},
	{Word: "neige", Category: "nature", Difficulty: DIFFICULTY_FACILE},
	{Word: "pluie", Category: "nature", Difficulty: DIFFICULTY_FACILE},
	{Word: "arc-en-ciel", Category: "nature", Difficulty: DIFFICULTY_FACILE},
	{Word: "feu", Category: "nature", Difficulty: DIFFICULTY_FACILE},
	{Word: "pizza", Category: "nourriture", Difficulty: DIFFICULTY_FACILE},
	{Word: "pomme", Category: "nourriture", Difficulty: DIFFICULTY_FACILE},
	{Word: "banane", Category: "nourriture", Difficulty: DIFFICULTY_FACILE},
	{Word: "gâteau", Category: "nourriture", Difficulty: DIFFICULTY_FACILE},
	{Word: "glace", Category: "nourriture", Difficulty: DIFFICULTY_FACILE},
	{Word: "pain", Category: "nourriture", Difficulty: DIFFICULTY_FACILE},
	{Word: "fromage", Category: "nourriture", Difficulty: DIFFICULTY_FACILE},
	{Word: "œuf", Category: "nourriture", Difficulty: DIFFICULTY_FACILE},
	{Word: "bonbon", Category: "nourriture", Difficulty: DIFFICULTY_FACILE},
	{Word: "carotte", Category: "nourriture", Difficulty: DIFFICULTY_FACILE},
	{Word: "orange", Category: "nourriture", Difficulty: DIFFICULTY_FACILE},
	{Word: "fraise", Category: "nourriture", Difficulty: DIFFICULTY_FACILE},
	{Word: "œil", Category: "corps", Difficulty: DIFFICULTY_FACILE},
	{Word: "main", Category: "corps", Difficulty: DIFFICULTY_FACILE},
	{Word: "pied", Category: "corps", Difficulty: DIFFICULTY_FACILE},
	{Word: "cœur", Category: "corps", Difficulty: DIFFICULTY_FACILE},
	{Word: "dent", Category: "corps", Difficulty: DIFFICULTY_FACILE},
	{Word: "éléphant", Category: "animal", Difficulty: DIFFICULTY_MOYEN},
	{Word: "lion", Category: "animal", Difficulty: DIFFICULTY_MOYEN},
	{Word: "serpent", Category: "animal", Difficulty: DIFFICULTY_MOYEN},
	{Word: "tortue", Category: "animal", Difficulty: DIFFICULTY_MOYEN},
	{Word: "grenouille", Category: "animal", Difficulty: DIFFICULTY_MOYEN},
	{Word: "cheval", Category: "animal", Difficulty: DIFFICULTY_MOYEN},
	{Word: "papillon", Category: "animal", Difficulty: DIFFICULTY_MOYEN},
	{Word: "araignée", Category: "animal", Difficulty: DIFFICULTY_MOYEN},
	{Word: "dauphin", Category: "animal", Difficulty: DIFFICULTY_MOYEN},
	{Word: "requin", Category: "animal", Difficulty: DIFFICULTY_MOYEN},
	{Word: "crocodile", Category: "animal", Difficulty: DIFFICULTY_MOYEN},
	{Word: "singe", Category: "animal", Difficulty: DIFFICULTY_MOYEN},
	{Word: "girafe", Category: "animal", Difficulty: DIFFICULTY_MOYEN},
	{Word: "hibou", Category: "animal", Difficulty: DIFFICULTY_MOYEN},
	{Word: "escargot", Category: "animal", Difficulty: DIFFICULTY_MOYEN},
	{Word: "pingouin", Category: "animal", Difficulty: DIFFICULTY_MOYEN},
	{Word: "baleine", Category: "animal", Difficulty: DIFFICULTY_MOYEN},
	{Word: "méduse", Category: "animal", Difficulty: DIFFICULTY_MOYEN},
	{Word: "crabe", Category: "animal", Difficulty: DIFFICULTY_MOYEN},
	{Word: "fourmi", Category: "animal", Difficulty: DIFFICULTY_MOYEN},
	{Word: "avion", Category: "objet", Difficulty: DIFFICULTY_MOYEN},
	{Word: "bateau", Category: "objet", Difficulty: DIFFICULTY_MOYEN},
	{Word: "téléphone", Category: "objet", Difficulty: DIFFICULTY_MOYEN},
	{Word: "ordinateur", Category: "objet", Difficulty: DIFFICULTY_MOYEN},
	{Word: "horloge", Category: "objet", Difficulty: DIFFICULTY_MOYEN},
	{Word: "guitare", Category: "objet", Difficulty: DIFFICULTY_MOYEN},
	{Word: "piano", Category: "objet", Difficulty: DIFFICULTY_MOYEN},
	{Word: "tambour", Category: "objet", Difficulty: DIFFICULTY_MOYEN},
	{Word: "violon", Category: "objet", Difficulty: DIFFICULTY_MOYEN},
	{Word: "caméra", Category: "objet", Difficulty: DIFFICULTY_MOYEN},
	{Word: "robot", Category: "objet", Difficulty: DIFFICULTY_MOYEN},
	{Word: "fusée", Category: "objet", Difficulty: DIFFICULTY_MOYEN},
	{Word: "hélicoptère", Category: "objet", Difficulty: DIFFICULTY_MOYEN},
	{Word: "train", Category: "objet", Difficulty: DIFFICULTY_MOYEN},
	{Word: "moto", Category: "objet", Difficulty: DIFFICULTY_MOYEN},
	{Word: "tracteur", Category: "objet", Difficulty: DIFFICULTY_MOYEN},
	{Word: "couronne", Category: "objet", Difficulty: DIFFICULTY_MOYEN},
	{Word: "épée", Category: "objet", Difficulty: DIFFICULTY_MOYEN},
	{Word: "bouclier", Category: "objet", Difficulty: DIFFICULTY_MOYEN},
	{Word: "arc", Category: "objet", Difficulty: DIFFICULTY_MOYEN},
	{Word: "ancre", Category: "objet", Difficulty: DIFFICULTY_MOYEN},
	{Word: "boussole", Category: "objet", Difficulty: DIFFICULTY_MOYEN},
	{Word: "microscope", Category: "objet", Difficulty: DIFFICULTY_MOYEN},
	{Word: "télescope", Category: "objet", Difficulty: DIFFICULTY_MOYEN},
	{Word: "parachute", Category: "objet", Difficulty: DIFFICULTY_MOYEN},
	{Word: "skateboard", Category: "objet", Difficulty: DIFFICULTY_MOYEN},
	{Word: "trottinette", Category: "objet", Difficulty: DIFFICULTY_MOYEN},
	{Word: "rivière", Category: "nature", Difficulty: DIFFICULTY_MOYEN},
	{Word: "océan", Category: "nature", Difficulty: DIFFICULTY_MOYEN},
	{Word: "forêt", Category: "nature", Difficulty: DIFFICULTY_MOYEN},
	{Word: "plage", Category: "nature", Difficulty: DIFFICULTY_MOYEN},
	{Word: "volcan", Category: "nature", Difficulty: DIFFICULTY_MOYEN},
	{Word: "cascade", Category: "nature", Difficulty: DIFFICULTY_MOYEN},
	{Word: "île", Category: "nature", Difficulty: DIFFICULTY_MOYEN},
	{Word: "désert", Category: "nature", Difficulty: DIFFICULTY_MOYEN},
	{Word: "éclair", Category: "nature", Difficulty: DIFFICULTY_MOYEN},
	{Word: "tornade", Category: "nature", Difficulty: DIFFICULTY_MOYEN},
	{Word: "cactus", Category: "nature", Difficulty: DIFFICULTY_MOYEN},
	{Word: "champignon", Category: "nature", Difficulty: DIFFICULTY_MOYEN},
	{Word: "palmier", Category: "nature", Difficulty: DIFFICULTY_MOYEN},
	{Word: "croissant", Category: "nourriture", Difficulty: DIFFICULTY_MOYEN},
	{Word: "baguette", Category: "nourriture", Difficulty: DIFFICULTY_MOYEN},
	{Word: "chocolat", Category: "nourriture", Difficulty: DIFFICULTY_MOYEN},
	{Word: "hamburger", Category: "nourriture", Difficulty: DIFFICULTY_MOYEN},
	{Word: "spaghetti", Category: "nourriture", Difficulty: DIFFICULTY_MOYEN},
	{Word: "sushi", Category: "nourriture", Difficulty: DIFFICULTY_MOYEN},
	{Word: "popcorn", Category: "nourriture", Difficulty: DIFFICULTY_MOYEN},
	{Word: "crêpe", Category: "nourriture", Difficulty: DIFFICULTY_MOYEN},
	{Word: "sandwich", Category: "nourriture", Difficulty: DIFFICULTY_MOYEN},
	{Word: "soupe", Category: "nourriture", Difficulty: DIFFICULTY_MOYEN},
	{Word: "salade", Category: "nourriture", Difficulty: DIFFICULTY_MOYEN},
	{Word: "café", Category: "nourriture", Difficulty: DIFFICULTY_MOYEN},
	{Word: "thé", Category: "nourriture", Difficulty: DIFFICULTY_MOYEN},
	{Word: "vin", Category: "nourriture", Difficulty: DIFFICULTY_MOYEN},
	{Word: "bière", Category: "nourriture", Difficulty: DIFFICULTY_MOYEN},
	{Word: "pastèque", Category: "nourriture", Difficulty: DIFFICULTY_MOYEN},
	{Word: "ananas", Category: "nourriture", Difficulty: DIFFICULTY_MOYEN},
	{Word: "raisin", Category: "nourriture", Difficulty: DIFFICULTY_MOYEN},
	{Word: "cerise", Category: "nourriture", Difficulty: DIFFICULTY_MOYEN},
	{Word: "citron", Category: "nourriture", Difficulty: DIFFICULTY_MOYEN},
	{Word: "pirate", Category: "personnage", Difficulty: DIFFICULTY_MOYEN},
	{Word: "clown", Category: "personnage", Difficulty: DIFFICULTY_MOYEN},
	{Word: "sorcière", Category: "personnage", Difficulty: DIFFICULTY_MOYEN},
	{Word: "fantôme", Category: "personnage", Difficulty: DIFFICULTY_MOYEN},
	{Word: "roi", Category: "personnage", Difficulty: DIFFICULTY_MOYEN},
	{Word: "reine", Category: "personnage", Difficulty: DIFFICULTY_MOYEN},
	{Word: "chevalier", Category: "personnage", Difficulty: DIFFICULTY_MOYEN},
	{Word: "princesse", Category: "personnage", Difficulty: DIFFICULTY_MOYEN},
	{Word: "ninja", Category: "personnage", Difficulty: DIFFICULTY_MOYEN},
	{Word: "vampire", Category: "personnage", Difficulty: DIFFICULTY_MOYEN},
	{Word: "momie", Category: "personnage", Difficulty: DIFFICULTY_MOYEN},
	{Word: "zombie", Category: "personnage", Difficulty: DIFFICULTY_MOYEN},
	{Word: "sirène", Category: "personnage", Difficulty: DIFFICULTY_MOYEN},
	{Word: "fée", Category: "personnage", Difficulty: DIFFICULTY_MOYEN},
	{Word: "dragon", Category: "personnage", Difficulty: DIFFICULTY_MOYEN},
	{Word: "licorne", Category: "personnage", Difficulty: DIFFICULTY_MOYEN},
	{Word: "extraterrestre", Category: "personnage", Difficulty: DIFFICULTY_MOYEN},
	{Word: "astronaute", Category: "personnage", Difficulty: DIFFICULTY_MOYEN},
	{Word: "pompier", Category: "personnage", Difficulty: DIFFICULTY_MOYEN},
	{Word: "policier", Category: "personnage", Difficulty: DIFFICULTY_MOYEN},
	{Word: "médecin", Category: "personnage", Difficulty: DIFFICULTY_MOYEN},
	{Word: "cuisinier", Category: "personnage", Difficulty: DIFFICULTY_MOYEN},
	{Word: "château", Category: "lieu", Difficulty: DIFFICULTY_MOYEN},
	{Word: "église", Category: "lieu", Difficulty: DIFFICULTY_MOYEN},
	{Word: "pyramide", Category: "lieu", Difficulty: DIFFICULTY_MOYEN},
	{Word: "phare", Category: "lieu", Difficulty: DIFFICULTY_MOYEN},
	{Word: "pont", Category: "lieu", Difficulty: DIFFICULTY_MOYEN},
	{Word: "école", Category: "lieu", Difficulty: DIFFICULTY_MOYEN},
	{Word: "hôpital", Category: "lieu", Difficulty: DIFFICULTY_MOYEN},
	{Word: "cinéma", Category: "lieu", Difficulty: DIFFICULTY_MOYEN},
	{Word: "restaurant", Category: "lieu", Difficulty: DIFFICULTY_MOYEN},
	{Word: "prison", Category: "lieu", Difficulty: DIFFICULTY_MOYEN},
	{Word: "stade", Category: "lieu", Difficulty: DIFFICULTY_MOYEN},
	{Word: "cirque", Category: "lieu", Difficulty: DIFFICULTY_MOYEN},
	{Word: "zoo", Category: "lieu", Difficulty: DIFFICULTY_MOYEN},
	{Word: "ferme", Category: "lieu", Difficulty: DIFFICULTY_MOYEN},
	{Word: "usine", Category: "lieu", Difficulty: DIFFICULTY_MOYEN},
	{Word: "football", Category: "sport", Difficulty: DIFFICULTY_MOYEN},
	{Word: "basketball", Category: "sport", Difficulty: DIFFICULTY_MOYEN},
	{Word: "tennis", Category: "sport", Difficulty: DIFFICULTY_MOYEN},
	{Word: "natation", Category: "sport", Difficulty: DIFFICULTY_MOYEN},
	{Word: "ski", Category: "sport", Difficulty: DIFFICULTY_MOYEN},
	{Word: "surf", Category: "sport", Difficulty: DIFFICULTY_MOYEN},
	{Word: "boxe", Category: "sport", Difficulty: DIFFICULTY_MOYEN},
	{Word: "golf", Category: "sport", Difficulty: DIFFICULTY_MOYEN},
	{Word: "pêche", Category: "activité", Difficulty: DIFFICULTY_MOYEN},
	{Word: "camping", Category: "activité", Difficulty: DIFFICULTY_MOYEN},
	{Word: "jardinage", Category: "activité", Difficulty: DIFFICULTY_MOYEN},
	{Word: "yoga", Category: "activité", Difficulty: DIFFICULTY_MOYEN},
	{Word: "rêver", Category: "action", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "pleurer", Category: "action", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "rire", Category: "action", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "danser", Category: "action", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "voler", Category: "action", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "nager", Category: "action", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "tomber", Category: "action", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "sauter", Category: "action", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "courir", Category: "action", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "dormir", Category: "action", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "manger", Category: "action", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "cuisiner", Category: "action", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "chanter", Category: "action", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "penser", Category: "action", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "écouter", Category: "action", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "attendre", Category: "action", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "chercher", Category: "action", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "voyager", Category: "action", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "escalader", Category: "action", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "plonger", Category: "action", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "amour", Category: "concept", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "liberté", Category: "concept", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "paix", Category: "concept", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "guerre", Category: "concept", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "temps", Category: "concept", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "musique", Category: "concept", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "silence", Category: "concept", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "froid", Category: "concept", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "chaud", Category: "concept", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "vitesse", Category: "concept", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "gravité", Category: "concept", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "magie", Category: "concept", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "chance", Category: "concept", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "surprise", Category: "concept", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "peur", Category: "concept", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "colère", Category: "concept", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "joie", Category: "concept", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "tristesse", Category: "concept", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "faim", Category: "concept", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "soif", Category: "concept", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "fatigue", Category: "concept", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "douleur", Category: "concept", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "cauchemar", Category: "concept", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "nostalgie", Category: "concept", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "anniversaire", Category: "événement", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "mariage", Category: "événement", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "vacances", Category: "événement", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "carnaval", Category: "événement", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "concert", Category: "événement", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "fête", Category: "événement", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "révolution", Category: "événement", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "apocalypse", Category: "événement", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "déjà-vu", Category: "expression", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "selfie", Category: "expression", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "hashtag", Category: "expression", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "wifi", Category: "technologie", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "emoji", Category: "technologie", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "bitcoin", Category: "technologie", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "podcast", Category: "technologie", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "streaming", Category: "technologie", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "caméléon", Category: "animal", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "ornithorynque", Category: "animal", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "axolotl", Category: "animal", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "paresseux", Category: "animal", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "panda", Category: "animal", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "koala", Category: "animal", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "kangourou", Category: "animal", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "flamant", Category: "animal", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "pieuvre", Category: "animal", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "scorpion", Category: "animal", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "sablier", Category: "objet", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "trampoline", Category: "objet", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "kaléidoscope", Category: "objet", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "boomerang", Category: "objet", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "yoyo", Category: "objet", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "toboggan", Category: "objet", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "balançoire", Category: "objet", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "manège", Category: "objet", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "aquarium", Category: "objet", Difficulty: DIFFICULTY_DIFFICILE},
	{Word: "fontaine", Category: "objet", Difficulty: DIFFICULTY_DIFFICILE},
}
