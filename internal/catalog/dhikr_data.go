package catalog

import "github.com/julianstephens/ibadah/internal/models"

var dhikrItems = []models.DhikrItem{
	{ID: "1", Text: "سُبْحَانَ اللَّهِ", Transliteration: "Subhan Allah", Translation: "Glory be to Allah", Count: 33, Category: "Tasbih"},
	{ID: "2", Text: "الْحَمْدُ لِلَّهِ", Transliteration: "Alhamdulillah", Translation: "Praise be to Allah", Count: 33, Category: "Tahmid"},
	{ID: "3", Text: "اللَّهُ أَكْبَرُ", Transliteration: "Allahu Akbar", Translation: "Allah is the Greatest", Count: 34, Category: "Takbir"},
	{ID: "4", Text: "لَا إِلَهَ إِلَّا اللَّهُ", Transliteration: "La ilaha illa Allah", Translation: "There is no god but Allah", Count: 100, Category: "Tahlil"},
	{ID: "5", Text: "سُبْحَانَ اللَّهِ وَبِحَمْدِهِ", Transliteration: "Subhan Allahi wa bihamdihi", Translation: "Glory be to Allah and praise Him", Count: 100, Category: "Tasbih"},
	{ID: "6", Text: "سُبْحَانَ اللَّهِ الْعَظِيمِ", Transliteration: "Subhan Allahi al-Azeem", Translation: "Glory be to Allah, the Magnificent", Count: 100, Category: "Tasbih"},
	{ID: "7", Text: "سُبْحَانَ اللَّهِ وَبِحَمْدِهِ سُبْحَانَ اللَّهِ الْعَظِيمِ", Transliteration: "Subhan Allahi wa bihamdihi, Subhan Allahi al-Azeem", Translation: "Glory be to Allah and praise Him, Glory be to Allah the Magnificent", Count: 100, Category: "Tasbih"},
	{ID: "8", Text: "أَسْتَغْفِرُ اللَّهَ", Transliteration: "Astaghfirullah", Translation: "I seek forgiveness from Allah", Count: 100, Category: "Istighfar"},
	{ID: "9", Text: "أَسْتَغْفِرُ اللَّهَ الْعَظِيمَ الَّذِي لَا إِلَهَ إِلَّا هُوَ الْحَيُّ الْقَيُّومُ وَأَتُوبُ إِلَيْهِ", Transliteration: "Astaghfirullah al-Azeem alladhi la ilaha illa Huwa al-Hayy al-Qayyum wa atubu ilayh", Translation: "I seek forgiveness from Allah the Mighty, whom there is no god but He, the Living, the Eternal, and I repent to Him", Count: 100, Category: "Istighfar"},
	{ID: "10", Text: "رَبِّ اغْفِرْ لِي وَتُبْ عَلَيَّ إِنَّكَ أَنْتَ التَّوَّابُ الرَّحِيمُ", Transliteration: "Rabbi ghfir li wa tub alayya innaka anta at-Tawwab ar-Raheem", Translation: "My Lord, forgive me and accept my repentance, indeed You are the Oft-Returning, the Merciful", Count: 100, Category: "Istighfar"},
	{ID: "11", Text: "اللَّّهُمَّ صَلِّ عَلَى مُحَمَّدٍ", Transliteration: "Allahumma salli ala Muhammad", Translation: "O Allah, send blessings upon Muhammad", Count: 100, Category: "Salawat"},
	{ID: "12", Text: "اللَّهُمَّ صَلِّ وَسَلِّمْ عَلَى نَبِيِّنَا مُحَمَّدٍ", Transliteration: "Allahumma salli wa sallim ala nabiyyina Muhammad", Translation: "O Allah, send blessings and peace upon our Prophet Muhammad", Count: 100, Category: "Salawat"},
	{ID: "13", Text: "اللَّهُمَّ صَلِّ عَلَى مُحَمَّدٍ وَعَلَى آلِ مُحَمَّدٍ", Transliteration: "Allahumma salli ala Muhammad wa ala ali Muhammad", Translation: "O Allah, send blessings upon Muhammad and the family of Muhammad", Count: 100, Category: "Salawat"},
	{ID: "14", Text: "لَا حَوْلَ وَلَا قُوَّةَ إِلَّا بِاللَّهِ", Transliteration: "La hawla wa la quwwata illa billah", Translation: "There is no power except with Allah", Count: 100, Category: "Hawqala"},
	{ID: "15", Text: "حَسْبُنَا اللَّهُ وَنِعْمَ الْوَكِيلُ", Transliteration: "Hasbuna Allahu wa ni'ma al-wakeel", Translation: "Allah is sufficient for us and He is the best Disposer of affairs", Count: 100, Category: "Tawakkul"},
	{ID: "16", Text: "لَا إِلَهَ إِلَّا اللَّهُ وَحْدَهُ لَا شَرِيكَ لَهُ", Transliteration: "La ilaha illa Allah wahdahu la shareeka lah", Translation: "There is no god but Allah alone, with no partner", Count: 100, Category: "Tahlil"},
	{ID: "17", Text: "لَا إِلَهَ إِلَّا اللَّهُ ... عَلَى كُلِّ شَيْءٍ قَدِيرٌ", Transliteration: "La ilaha illa Allah wahdahu ... wa huwa ala kulli shay'in qadeer", Translation: "There is no god but Allah alone... and He is able to do all things", Count: 100, Category: "Tahlil"},
	{ID: "18", Text: "يَا رَحْمَانُ", Transliteration: "Ya Rahman", Translation: "O Most Merciful", Count: 100, Category: "Asma ul-Husna"},
	{ID: "19", Text: "يَا رَحِيمُ", Transliteration: "Ya Raheem", Translation: "O Most Compassionate", Count: 100, Category: "Asma ul-Husna"},
	{ID: "20", Text: "يَا غَفَّارُ", Transliteration: "Ya Ghaffar", Translation: "O Oft-Forgiving", Count: 100, Category: "Asma ul-Husna"},
	{ID: "21", Text: "يَا كَرِيمُ", Transliteration: "Ya Kareem", Translation: "O Most Generous", Count: 100, Category: "Asma ul-Husna"},
	{ID: "22", Text: "يَا لَطِيفُ", Transliteration: "Ya Lateef", Translation: "O Most Gentle", Count: 100, Category: "Asma ul-Husna"},
	{ID: "23", Text: "رَبَّنَا آتِنَا ... عَذَابَ النَّارِ", Transliteration: "Rabbana atina fi'd-dunya ... adhab an-nar", Translation: "Our Lord, give us good in this world and in the next...", Count: 100, Category: "Dua"},
	{ID: "24", Text: "رَبِّ اشْرَحْ لِي صَدْرِي ...", Transliteration: "Rabbi shrah li sadri wa yassir li amri", Translation: "My Lord, expand my chest and make my task easy for me", Count: 100, Category: "Dua"},
	{ID: "25", Text: "رَبِّ زِدْنِي عِلْمًا", Transliteration: "Rabbi zidni ilma", Translation: "My Lord, increase me in knowledge", Count: 100, Category: "Dua"},
	{ID: "26", Text: "رَبَّنَا لَا تُزِغْ قُلُوبَنَا ...", Transliteration: "Rabbana la tuzigh qulubana ...", Translation: "Our Lord, do not let our hearts deviate...", Count: 100, Category: "Dua"},
	{ID: "27", Text: "أَعُوذُ بِاللَّهِ مِنَ الشَّيْطَانِ", Transliteration: "A'udhu billahi min ash-shaytan ir-rajeem", Translation: "I seek refuge in Allah from Satan, the accursed", Count: 3, Category: "Protection"},
	{ID: "28", Text: "بِسْمِ اللَّهِ الَّذِي لَا يَضُرُّ ...", Transliteration: "Bismillahi'lladhi la yadurru ...", Translation: "In the name of Allah with whose name nothing is harmed...", Count: 3, Category: "Protection"},
	{ID: "29", Text: "اللَّهُمَّ أَنْتَ رَبِّي ...", Transliteration: "Allahumma anta rabbi ...", Translation: "O Allah, You are my Lord...", Count: 1, Category: "Morning/Evening"},
	{ID: "30", Text: "رَضِيتُ بِاللَّهِ رَبًّا ...", Transliteration: "Radeetu billahi rabban ...", Translation: "I am pleased with Allah as my Lord...", Count: 3, Category: "Morning/Evening"},
}
