package gazetteer

import "github.com/FACorreiaa/smart-tour/internal/types"

// Grouped by region for maintenance only.
var indianDestinations = map[string]types.Coordinates{
	// Sikkim
	"gangtok":  {Lat: 27.3389, Lng: 88.6065},
	"pelling":  {Lat: 27.3, Lng: 88.2333},
	"lachung":  {Lat: 27.6909, Lng: 88.7463},
	"namchi":   {Lat: 27.1672, Lng: 88.3636},
	"ravangla": {Lat: 27.3032, Lng: 88.3636},
	"yuksom":   {Lat: 27.3745, Lng: 88.2123},
	"yumthang": {Lat: 27.8258, Lng: 88.698},
	"lachen":   {Lat: 27.73, Lng: 88.56},
	"jheel":    {Lat: 27.3893, Lng: 88.2486},

	// West Bengal
	"darjeeling":   {Lat: 27.041, Lng: 88.2663},
	"kalimpong":    {Lat: 27.0644, Lng: 88.4736},
	"mirik":        {Lat: 26.8867, Lng: 88.1844},
	"siliguri":     {Lat: 26.7271, Lng: 88.3953},
	"kurseong":     {Lat: 26.8832, Lng: 88.2779},
	"digha":        {Lat: 21.6238, Lng: 87.5059},
	"mandarmani":   {Lat: 21.6735, Lng: 87.6729},
	"tajpur":       {Lat: 21.6077, Lng: 87.5677},
	"kolkata":      {Lat: 22.5726, Lng: 88.3639},
	"sundarbans":   {Lat: 21.9497, Lng: 88.8107},
	"santiniketan": {Lat: 23.6773, Lng: 87.6838},

	// Meghalaya
	"shillong":     {Lat: 25.5788, Lng: 91.8933},
	"cherrapunjee": {Lat: 25.2799, Lng: 91.7263},
	"mawlynnong":   {Lat: 25.2031, Lng: 91.9182},
	"dawki":        {Lat: 25.1856, Lng: 92.0165},
	"mawsynram":    {Lat: 25.3069, Lng: 91.5831},
	"nongriat":     {Lat: 25.2484, Lng: 91.7124},

	// Uttarakhand
	"nainital":    {Lat: 29.3919, Lng: 79.4542},
	"mussoorie":   {Lat: 30.4598, Lng: 78.0644},
	"rishikesh":   {Lat: 30.0869, Lng: 78.2676},
	"haridwar":    {Lat: 29.9457, Lng: 78.1642},
	"dehradun":    {Lat: 30.3165, Lng: 78.0322},
	"auli":        {Lat: 30.5303, Lng: 79.5677},
	"jim corbett": {Lat: 29.53, Lng: 78.7747},
	"badrinath":   {Lat: 30.7433, Lng: 79.4938},
	"kedarnath":   {Lat: 30.7346, Lng: 79.0669},

	// Himachal Pradesh
	"dalhousie":   {Lat: 32.5387, Lng: 75.9701},
	"khajjiar":    {Lat: 32.5453, Lng: 76.0638},
	"manali":      {Lat: 32.2432, Lng: 77.1892},
	"shimla":      {Lat: 31.1048, Lng: 77.1734},
	"kullu":       {Lat: 31.9592, Lng: 77.1089},
	"dharamshala": {Lat: 32.219, Lng: 76.3234},
	"mcleodganj":  {Lat: 32.2427, Lng: 76.3233},
	"kasol":       {Lat: 32.01, Lng: 77.3152},
	"spiti":       {Lat: 32.2464, Lng: 78.0349},
	"kufri":       {Lat: 31.0978, Lng: 77.2696},
	"chail":       {Lat: 30.9677, Lng: 77.1907},

	// Odisha
	"puri":         {Lat: 19.8133, Lng: 85.8314},
	"konark":       {Lat: 19.8876, Lng: 86.0945},
	"gopalpur":     {Lat: 19.2583, Lng: 84.907},
	"chandipur":    {Lat: 21.4669, Lng: 87.0193},
	"bhubaneswar":  {Lat: 20.2961, Lng: 85.8245},
	"chilika lake": {Lat: 19.7158, Lng: 85.3311},

	// Andhra Pradesh
	"visakhapatnam": {Lat: 17.6868, Lng: 83.2185},
	"vizag":         {Lat: 17.6868, Lng: 83.2185},
	"araku":         {Lat: 18.3273, Lng: 82.8695},
	"araku valley":  {Lat: 18.3273, Lng: 82.8695},
	"tirupati":      {Lat: 13.6288, Lng: 79.4192},
	"vijayawada":    {Lat: 16.5062, Lng: 80.648},

	// Tamil Nadu
	"mahabalipuram": {Lat: 12.6269, Lng: 80.1928},
	"pondicherry":   {Lat: 11.9416, Lng: 79.8083},
	"ooty":          {Lat: 11.4102, Lng: 76.695},
	"kodaikanal":    {Lat: 10.2381, Lng: 77.4892},
	"chennai":       {Lat: 13.0827, Lng: 80.2707},
	"madurai":       {Lat: 9.9252, Lng: 78.1198},
	"rameshwaram":   {Lat: 9.2876, Lng: 79.3129},
	"kanyakumari":   {Lat: 8.0883, Lng: 77.5385},

	// Kerala
	"kovalam":   {Lat: 8.3988, Lng: 76.9781},
	"alleppey":  {Lat: 9.4981, Lng: 76.3388},
	"alappuzha": {Lat: 9.4981, Lng: 76.3388},
	"munnar":    {Lat: 10.0889, Lng: 77.0595},
	"wayanad":   {Lat: 11.6854, Lng: 76.132},
	"kochi":     {Lat: 9.9312, Lng: 76.2673},
	"thekkady":  {Lat: 9.5835, Lng: 77.183},
	"varkala":   {Lat: 8.7378, Lng: 76.7163},
	"kumarakom": {Lat: 9.6144, Lng: 76.4254},

	// Goa
	"goa":       {Lat: 15.2993, Lng: 73.9322},
	"panjim":    {Lat: 15.4909, Lng: 73.8278},
	"calangute": {Lat: 15.544, Lng: 73.7527},
	"baga":      {Lat: 15.5553, Lng: 73.754},
	"anjuna":    {Lat: 15.5746, Lng: 73.7419},
	"palolem":   {Lat: 15.01, Lng: 74.0232},

	// Rajasthan
	"jaipur":    {Lat: 26.9124, Lng: 75.7873},
	"udaipur":   {Lat: 24.5854, Lng: 73.7125},
	"jodhpur":   {Lat: 26.2389, Lng: 73.0243},
	"jaisalmer": {Lat: 26.9157, Lng: 70.9083},
	"pushkar":   {Lat: 26.4872, Lng: 74.5542},
	"mount abu": {Lat: 24.5926, Lng: 72.7156},
	"bikaner":   {Lat: 28.0229, Lng: 73.3119},

	// Gujarat
	"ahmedabad":     {Lat: 23.0225, Lng: 72.5714},
	"kutch":         {Lat: 23.7337, Lng: 69.8597},
	"dwarka":        {Lat: 22.2442, Lng: 68.9685},
	"somnath":       {Lat: 20.888, Lng: 70.401},
	"gir":           {Lat: 21.139, Lng: 70.8236},
	"rann of kutch": {Lat: 23.8348, Lng: 69.5371},

	// Major cities
	"mumbai":    {Lat: 19.076, Lng: 72.8777},
	"delhi":     {Lat: 28.6139, Lng: 77.209},
	"bangalore": {Lat: 12.9716, Lng: 77.5946},
	"bengaluru": {Lat: 12.9716, Lng: 77.5946},
	"hyderabad": {Lat: 17.385, Lng: 78.4867},
	"agra":      {Lat: 27.1767, Lng: 78.0081},
	"varanasi":  {Lat: 25.3176, Lng: 82.9739},
	"amritsar":  {Lat: 31.634, Lng: 74.8723},
	"lucknow":   {Lat: 26.8467, Lng: 80.9462},
	"srinagar":  {Lat: 34.0837, Lng: 74.7973},
	"leh":       {Lat: 34.1526, Lng: 77.5771},
	"ladakh":    {Lat: 34.1526, Lng: 77.5771},
}
