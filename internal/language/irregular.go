package language

// irregularVerbs maps conjugated forms of high-frequency irregular
// verbs to their infinitive. The table covers the twenty or so verbs
// that account for most irregular forms in everyday text; regular
// conjugations are handled by the suffix rules in the lemmatizer.
//
// Where a form is shared between two verbs (siento: sentir/sentar,
// vino: venir/"wine") the more common verb wins.
var irregularVerbs = map[string]string{
	// ser
	"soy": "ser", "eres": "ser", "es": "ser", "somos": "ser", "sois": "ser", "son": "ser",
	"era": "ser", "eras": "ser", "éramos": "ser", "erais": "ser", "eran": "ser",
	"fui": "ser", "fuiste": "ser", "fue": "ser", "fuimos": "ser", "fuisteis": "ser", "fueron": "ser",
	"sido": "ser", "siendo": "ser",
	// estar
	"estoy": "estar", "estás": "estar", "está": "estar", "estamos": "estar", "estáis": "estar", "están": "estar",
	"estaba": "estar", "estabas": "estar", "estábamos": "estar", "estabais": "estar", "estaban": "estar",
	"estuve": "estar", "estuviste": "estar", "estuvo": "estar", "estuvimos": "estar", "estuvieron": "estar",
	"estado": "estar", "estando": "estar",
	// tener
	"tengo": "tener", "tienes": "tener", "tiene": "tener", "tenemos": "tener", "tenéis": "tener", "tienen": "tener",
	"tenía": "tener", "tenías": "tener", "teníamos": "tener", "teníais": "tener", "tenían": "tener",
	"tuve": "tener", "tuviste": "tener", "tuvo": "tener", "tuvimos": "tener", "tuvieron": "tener",
	"tenido": "tener", "teniendo": "tener",
	// hacer
	"hago": "hacer", "haces": "hacer", "hace": "hacer", "hacemos": "hacer", "hacéis": "hacer", "hacen": "hacer",
	"hacía": "hacer", "hacías": "hacer", "hacíamos": "hacer", "hacíais": "hacer", "hacían": "hacer",
	"hice": "hacer", "hiciste": "hacer", "hizo": "hacer", "hicimos": "hacer", "hicieron": "hacer",
	"hecho": "hacer", "haciendo": "hacer",
	// ir
	"voy": "ir", "vas": "ir", "va": "ir", "vamos": "ir", "vais": "ir", "van": "ir",
	"iba": "ir", "ibas": "ir", "íbamos": "ir", "ibais": "ir", "iban": "ir",
	"yendo": "ir", "ido": "ir",
	// poder
	"puedo": "poder", "puedes": "poder", "puede": "poder", "podemos": "poder", "podéis": "poder", "pueden": "poder",
	"podía": "poder", "podías": "poder", "podíamos": "poder", "podíais": "poder", "podían": "poder",
	"pude": "poder", "pudiste": "poder", "pudo": "poder", "pudimos": "poder", "pudieron": "poder",
	"podido": "poder", "pudiendo": "poder",
	// decir
	"digo": "decir", "dices": "decir", "dice": "decir", "decimos": "decir", "decís": "decir", "dicen": "decir",
	"decía": "decir", "decías": "decir", "decíamos": "decir", "decíais": "decir", "decían": "decir",
	"dije": "decir", "dijiste": "decir", "dijo": "decir", "dijimos": "decir", "dijeron": "decir",
	"dicho": "decir", "diciendo": "decir",
	// venir
	"vengo": "venir", "vienes": "venir", "viene": "venir", "venimos": "venir", "venís": "venir", "vienen": "venir",
	"venía": "venir", "venías": "venir", "veníamos": "venir", "veníais": "venir", "venían": "venir",
	"vine": "venir", "viniste": "venir", "vino": "venir", "vinimos": "venir", "vinieron": "venir",
	"venido": "venir", "viniendo": "venir",
	// querer
	"quiero": "querer", "quieres": "querer", "quiere": "querer", "queremos": "querer", "queréis": "querer", "quieren": "querer",
	"quería": "querer", "querías": "querer", "queríamos": "querer", "queríais": "querer", "querían": "querer",
	"quise": "querer", "quisiste": "querer", "quiso": "querer", "quisimos": "querer", "quisieron": "querer",
	"querido": "querer", "queriendo": "querer",
	// saber
	"sé": "saber", "sabes": "saber", "sabe": "saber", "sabemos": "saber", "sabéis": "saber", "saben": "saber",
	"sabía": "saber", "sabías": "saber", "sabíamos": "saber", "sabíais": "saber", "sabían": "saber",
	"supe": "saber", "supiste": "saber", "supo": "saber", "supimos": "saber", "supieron": "saber",
	"sabido": "saber", "sabiendo": "saber",
	// dar
	"doy": "dar", "das": "dar", "da": "dar", "damos": "dar", "dais": "dar", "dan": "dar",
	"daba": "dar", "dabas": "dar", "dábamos": "dar", "dabais": "dar", "daban": "dar",
	"di": "dar", "diste": "dar", "dio": "dar", "dimos": "dar", "dieron": "dar",
	"dado": "dar", "dando": "dar",
	// ver
	"veo": "ver", "ves": "ver", "ve": "ver", "vemos": "ver", "veis": "ver", "ven": "ver",
	"veía": "ver", "veías": "ver", "veíamos": "ver", "veíais": "ver", "veían": "ver",
	"vi": "ver", "viste": "ver", "vio": "ver", "vimos": "ver", "vieron": "ver",
	"visto": "ver", "viendo": "ver",
	// sentir (e->ie)
	"siento": "sentir", "sientes": "sentir", "siente": "sentir", "sentís": "sentir", "sienten": "sentir",
	"sentía": "sentir", "sentías": "sentir", "sentíamos": "sentir", "sentíais": "sentir", "sentían": "sentir",
	"sentí": "sentir", "sentiste": "sentir", "sintió": "sentir", "sentimos": "sentir", "sintieron": "sentir",
	"sentido": "sentir", "sintiendo": "sentir",
	"sienta": "sentir", "sintamos": "sentir", "sintáis": "sentir", "sientan": "sentir",
	// pensar (e->ie)
	"pienso": "pensar", "piensas": "pensar", "piensa": "pensar", "pensáis": "pensar", "piensan": "pensar",
	"pensaba": "pensar", "pensabas": "pensar", "pensábamos": "pensar", "pensabais": "pensar", "pensaban": "pensar",
	"pensé": "pensar", "pensaste": "pensar", "pensó": "pensar", "pensamos": "pensar", "pensaron": "pensar",
	"pensado": "pensar", "pensando": "pensar",
	// entender (e->ie)
	"entiendo": "entender", "entiendes": "entender", "entiende": "entender", "entendemos": "entender", "entendéis": "entender", "entienden": "entender",
	"entendía": "entender", "entendías": "entender", "entendíamos": "entender", "entendíais": "entender", "entendían": "entender",
	"entendí": "entender", "entendiste": "entender", "entendió": "entender", "entendimos": "entender", "entendieron": "entender",
	"entendido": "entender", "entendiendo": "entender",
	// dormir (o->ue)
	"duermo": "dormir", "duermes": "dormir", "duerme": "dormir", "dormís": "dormir", "duermen": "dormir",
	"dormía": "dormir", "dormías": "dormir", "dormíamos": "dormir", "dormíais": "dormir", "dormían": "dormir",
	"dormí": "dormir", "dormiste": "dormir", "durmió": "dormir", "dormimos": "dormir", "durmieron": "dormir",
	"dormido": "dormir", "durmiendo": "dormir",
	// volver (o->ue)
	"vuelvo": "volver", "vuelves": "volver", "vuelve": "volver", "volvemos": "volver", "volvéis": "volver", "vuelven": "volver",
	"volvía": "volver", "volvías": "volver", "volvíamos": "volver", "volvíais": "volver", "volvían": "volver",
	"volví": "volver", "volviste": "volver", "volvió": "volver", "volvimos": "volver", "volvieron": "volver",
	"vuelto": "volver", "volviendo": "volver",
	// encontrar (o->ue)
	"encuentro": "encontrar", "encuentras": "encontrar", "encuentra": "encontrar", "encontráis": "encontrar", "encuentran": "encontrar",
	"encontraba": "encontrar", "encontrabas": "encontrar", "encontrábamos": "encontrar", "encontrabais": "encontrar", "encontraban": "encontrar",
	"encontré": "encontrar", "encontraste": "encontrar", "encontró": "encontrar", "encontramos": "encontrar", "encontraron": "encontrar",
	"encontrado": "encontrar", "encontrando": "encontrar",
	// pedir (e->i)
	"pido": "pedir", "pides": "pedir", "pide": "pedir", "pedís": "pedir", "piden": "pedir",
	"pedía": "pedir", "pedías": "pedir", "pedíamos": "pedir", "pedíais": "pedir", "pedían": "pedir",
	"pedí": "pedir", "pediste": "pedir", "pidió": "pedir", "pedimos": "pedir", "pidieron": "pedir",
	"pedido": "pedir", "pidiendo": "pedir",
	// seguir (e->i)
	"sigo": "seguir", "sigues": "seguir", "sigue": "seguir", "seguís": "seguir", "siguen": "seguir",
	"seguía": "seguir", "seguías": "seguir", "seguíamos": "seguir", "seguíais": "seguir", "seguían": "seguir",
	"seguí": "seguir", "seguiste": "seguir", "siguió": "seguir", "seguimos": "seguir", "siguieron": "seguir",
	"seguido": "seguir", "siguiendo": "seguir",
}

// properNames are common Spanish given names excluded from all
// lemmatization lookups so "María" never becomes "marír".
var properNames = map[string]struct{}{
	"carlos": {}, "maría": {}, "maria": {}, "josé": {}, "jose": {}, "juan": {},
	"pedro": {}, "luis": {}, "miguel": {}, "antonio": {}, "francisco": {},
	"manuel": {}, "javier": {}, "david": {}, "pablo": {}, "ana": {},
	"carmen": {}, "isabel": {}, "rosa": {}, "elena": {}, "laura": {},
	"marta": {}, "lucía": {}, "lucia": {}, "sara": {}, "paula": {},
	"andrea": {}, "sofía": {}, "sofia": {}, "marcos": {}, "diego": {},
	"andrés": {}, "andres": {}, "fernando": {}, "rafael": {}, "alberto": {},
	"alejandro": {}, "roberto": {}, "ricardo": {}, "daniel": {}, "sergio": {},
	"jorge": {}, "ramón": {}, "ramon": {}, "ángel": {}, "angel": {},
	"mercedes": {}, "pilar": {}, "teresa": {}, "dolores": {}, "cristina": {},
	"beatriz": {}, "silvia": {},
}

// IsProperName reports whether the word is a known Spanish given name.
func IsProperName(word string) bool {
	_, ok := properNames[word]
	return ok
}
