package catalog

var hadiths = []Hadith{
	{ID: 1, Text: "The believer is not one who eats his fill while his neighbor goes hungry.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Al-Adab Al-Mufrad", Category: "Compassion"},
	{ID: 2, Text: "Whoever believes in Allah and the Last Day should speak good or keep silent.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sahih Bukhari", Category: "Speech"},
	{ID: 3, Text: "The best of people are those who benefit others.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Daraqutni", Category: "Service"},
	{ID: 4, Text: "A person is not a believer who fills his stomach while his neighbor is hungry.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Al-Adab Al-Mufrad", Category: "Compassion"},
	{ID: 5, Text: "The most beloved of people to Allah are those who are most beneficial to people.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tabarani", Category: "Service"},
	{ID: 6, Text: "Kindness is a mark of faith, and whoever is not kind has no faith.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sahih Muslim", Category: "Kindness"},
	{ID: 7, Text: "The strong person is not the one who can wrestle someone else down. The strong person is the one who can control himself when he is angry.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sahih Bukhari", Category: "Self-Control"},
	{ID: 8, Text: "Allah does not look at your forms and possessions but He looks at your hearts and your deeds.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sahih Muslim", Category: "Sincerity"},
	{ID: 9, Text: "The world is green and beautiful, and Allah has appointed you as His stewards over it.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sahih Muslim", Category: "Environment"},
	{ID: 10, Text: "Whoever removes a worldly grief from a believer, Allah will remove from him one of the griefs of the Day of Judgment.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sahih Muslim", Category: "Help"},
	{ID: 11, Text: "The best jihad is a word of truth spoken in front of a tyrannical ruler.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sunan Abu Dawood", Category: "Justice"},
	{ID: 12, Text: "He is not of us who does not show mercy to our young ones and does not acknowledge the honor due to our elders.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sunan Abu Dawood", Category: "Respect"},
	{ID: 13, Text: "The seeking of knowledge is obligatory upon every Muslim.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Ibn Majah", Category: "Knowledge"},
	{ID: 14, Text: "A good word is charity.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sahih Bukhari", Category: "Charity"},
	{ID: 15, Text: "The best of you are those who learn the Quran and teach it.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sahih Bukhari", Category: "Knowledge"},
	{ID: 16, Text: "Whoever conceals the faults of a Muslim, Allah will conceal his faults in this world and the Hereafter.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sahih Muslim", Category: "Forgiveness"},
	{ID: 17, Text: "The merciful will be shown mercy by the Merciful One. Be merciful to others and you will receive mercy.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sunan Abu Dawood", Category: "Mercy"},
	{ID: 18, Text: "None of you truly believes until he loves for his brother what he loves for himself.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sahih Bukhari", Category: "Brotherhood"},
	{ID: 19, Text: "The best charity is that given in Ramadan.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tirmidhi", Category: "Charity"},
	{ID: 20, Text: "Whoever is not grateful to people is not grateful to Allah.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sunan Abu Dawood", Category: "Gratitude"},
	{ID: 21, Text: "The upper hand is better than the lower hand.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sahih Bukhari", Category: "Giving"},
	{ID: 22, Text: "Whoever relieves a believer's distress of the distressful aspects of this world, Allah will rescue him from a difficulty of the difficulties of the Hereafter.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sahih Muslim", Category: "Help"},
	{ID: 23, Text: "The best of houses is the house in which an orphan is well treated.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Ibn Majah", Category: "Orphans"},
	{ID: 24, Text: "Paradise lies at the feet of your mother.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sunan An-Nasa'i", Category: "Parents"},
	{ID: 25, Text: "The best of you is he who is best to his family.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tirmidhi", Category: "Family"},
	{ID: 26, Text: "Whoever walks with a wrongdoer to help him, has left Islam.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tabarani", Category: "Justice"},
	{ID: 27, Text: "The most complete of the believers in faith are those with the best character.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sunan Abu Dawood", Category: "Character"},
	{ID: 28, Text: "Whoever does not thank people, does not thank Allah.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sunan Abu Dawood", Category: "Gratitude"},
	{ID: 29, Text: "The believer's shade on the Day of Resurrection will be his charity.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tirmidhi", Category: "Charity"},
	{ID: 30, Text: "Whoever has been given gentleness has been given a good portion of this world and the next.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sunan Abu Dawood", Category: "Gentleness"},
	{ID: 31, Text: "The best of people are those who live longest and excel in their deeds.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tirmidhi", Category: "Excellence"},
	{ID: 32, Text: "Whoever believes in Allah and the Last Day, let him honor his guest.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sahih Bukhari", Category: "Hospitality"},
	{ID: 33, Text: "The world is a prison for the believer and paradise for the disbeliever.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sahih Muslim", Category: "Perspective"},
	{ID: 34, Text: "Actions are but by intention and every man shall have but that which he intended.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sahih Bukhari", Category: "Intention"},
	{ID: 35, Text: "The best of people are those who are most beneficial to others.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Daraqutni", Category: "Service"},
	{ID: 36, Text: "Whoever is kind, Allah will be kind to him; therefore be kind to man on the earth.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sunan Abu Dawood", Category: "Kindness"},
	{ID: 37, Text: "The best charity is to satisfy a hungry person.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Ahmad", Category: "Charity"},
	{ID: 38, Text: "Whoever guides someone to virtue will be rewarded equivalent to him who practices that good action.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sahih Muslim", Category: "Guidance"},
	{ID: 39, Text: "The best of you are those who feed others.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Ahmad", Category: "Generosity"},
	{ID: 40, Text: "Whoever suppresses his anger when he has the power to act upon it, Allah will call him before all of creation on the Day of Judgment.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tirmidhi", Category: "Self-Control"},
	{ID: 41, Text: "The best of worship is to have hope in Allah.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tabarani", Category: "Hope"},
	{ID: 42, Text: "Whoever loves to meet Allah, Allah loves to meet him.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sahih Bukhari", Category: "Love of Allah"},
	{ID: 43, Text: "The best of deeds is that which is done consistently, even if it is small.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sahih Muslim", Category: "Consistency"},
	{ID: 44, Text: "Whoever performs ablution perfectly, his sins will depart from his body, even from under his nails.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sahih Muslim", Category: "Purification"},
	{ID: 45, Text: "The best of prayers is the prayer of David: he used to sleep half the night, pray for a third of it, and sleep for a sixth of it.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sahih Bukhari", Category: "Prayer"},
	{ID: 46, Text: "Whoever recites the Quran and acts upon it, his parents will be crowned on the Day of Judgment.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sunan Abu Dawood", Category: "Quran"},
	{ID: 47, Text: "The best of you are those who are best to their wives.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tirmidhi", Category: "Marriage"},
	{ID: 48, Text: "Whoever visits a sick person or visits a brother in Islam, a caller calls out: 'May you be happy, may your walking be blessed, and may you occupy a dignified position in Paradise.'", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tirmidhi", Category: "Visiting"},
	{ID: 49, Text: "The best of people are those who are most beneficial to people.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Daraqutni", Category: "Service"},
	{ID: 50, Text: "Whoever helps a believer in distress, Allah will help him in distress in this world and the next.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sahih Muslim", Category: "Help"},
	{ID: 51, Text: "The best of people are those who live longest and excel in their deeds.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tirmidhi", Category: "Excellence"},
	{ID: 52, Text: "Whoever is patient during hardship and grateful during ease, Allah will grant him security.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tabarani", Category: "Patience"},
	{ID: 53, Text: "The best of you are those who learn the Quran and teach it to others.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sahih Bukhari", Category: "Teaching"},
	{ID: 54, Text: "Whoever makes peace between people, Allah will make peace for him.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sunan Abu Dawood", Category: "Peace"},
	{ID: 55, Text: "The best of worship is waiting for relief.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tirmidhi", Category: "Patience"},
	{ID: 56, Text: "Whoever seeks knowledge, Allah will make easy for him the path to Paradise.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sahih Muslim", Category: "Knowledge"},
	{ID: 57, Text: "The best of you are those who are slow to anger and quick to forgive.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tirmidhi", Category: "Forgiveness"},
	{ID: 58, Text: "Whoever gives charity equal to a date from honest earnings, Allah will accept it and nurture it for him.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sahih Bukhari", Category: "Charity"},
	{ID: 59, Text: "The best of people are those who are most humble.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tabarani", Category: "Humility"},
	{ID: 60, Text: "Whoever loves for the sake of Allah and hates for the sake of Allah has perfected his faith.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sunan Abu Dawood", Category: "Faith"},
	{ID: 61, Text: "The best of deeds is to make your parents happy.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tabarani", Category: "Parents"},
	{ID: 62, Text: "Whoever is grateful for little will be trusted with much.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tabarani", Category: "Gratitude"},
	{ID: 63, Text: "The best of you are those who are most beneficial to their families.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Daraqutni", Category: "Family"},
	{ID: 64, Text: "Whoever controls his tongue will be saved.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tirmidhi", Category: "Speech"},
	{ID: 65, Text: "The best of people are those who are most God-conscious.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tirmidhi", Category: "Taqwa"},
	{ID: 66, Text: "Whoever seeks forgiveness for the believing men and women, Allah will write for him a good deed for each believing man and woman.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tabarani", Category: "Forgiveness"},
	{ID: 67, Text: "The best of you are those who are most sincere in their worship.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tabarani", Category: "Sincerity"},
	{ID: 68, Text: "Whoever is content with what Allah has given him will be the richest of people.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tirmidhi", Category: "Contentment"},
	{ID: 69, Text: "The best of people are those who are most trustworthy.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tabarani", Category: "Trust"},
	{ID: 70, Text: "Whoever remembers Allah much will be loved by Allah.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tirmidhi", Category: "Remembrance"},
	{ID: 71, Text: "The best of people are those who are most patient during trials.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tabarani", Category: "Patience"},
	{ID: 72, Text: "Whoever seeks Allah's pleasure at the expense of people's displeasure, Allah will be pleased with him.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tirmidhi", Category: "Pleasing Allah"},
	{ID: 73, Text: "The best of people are those who are most generous with their time.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tabarani", Category: "Generosity"},
	{ID: 74, Text: "Whoever is easy-going with people, Allah will be easy-going with him.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tabarani", Category: "Ease"},
	{ID: 75, Text: "The best of people are those who are most hopeful in Allah's mercy.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tabarani", Category: "Hope"},
	{ID: 76, Text: "Whoever loves to meet Allah, Allah loves to meet him.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sahih Bukhari", Category: "Love of Allah"},
	{ID: 77, Text: "The best of people are those who are most fearful of Allah.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tabarani", Category: "Fear of Allah"},
	{ID: 78, Text: "Whoever is humble for Allah's sake, Allah will elevate him.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sahih Muslim", Category: "Humility"},
	{ID: 79, Text: "The best of people are those who are most careful about their prayers.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tabarani", Category: "Prayer"},
	{ID: 80, Text: "Whoever seeks knowledge in order to compete with scholars or to argue with fools has entered the Fire.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tirmidhi", Category: "Knowledge"},
	{ID: 81, Text: "The best of people are those who are most beneficial to Allah's creation.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Daraqutni", Category: "Service"},
	{ID: 82, Text: "Whoever is patient with people's harm will be rewarded by Allah.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tabarani", Category: "Patience"},
	{ID: 83, Text: "The best of people are those who are most just in their dealings.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tabarani", Category: "Justice"},
	{ID: 84, Text: "Whoever forgives and makes reconciliation, his reward is with Allah.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Quran 42:40", Category: "Forgiveness"},
	{ID: 85, Text: "The best of people are those who are most mindful of their words.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tabarani", Category: "Speech"},
	{ID: 86, Text: "Whoever is consistent in his good deeds will enter Paradise.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sahih Muslim", Category: "Consistency"},
	{ID: 87, Text: "The best of people are those who are most grateful to Allah.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tabarani", Category: "Gratitude"},
	{ID: 88, Text: "Whoever seeks Allah's forgiveness regularly, Allah will provide him a way out of every difficulty.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sunan Abu Dawood", Category: "Forgiveness"},
	{ID: 89, Text: "The best of people are those who are most devoted to their worship.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tabarani", Category: "Worship"},
	{ID: 90, Text: "Whoever is truthful in his speech will be trusted by people.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tabarani", Category: "Truthfulness"},
	{ID: 91, Text: "The best of people are those who are most careful about what they eat.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tabarani", Category: "Halal"},
	{ID: 92, Text: "Whoever is generous with his wealth will be beloved to Allah.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tabarani", Category: "Generosity"},
	{ID: 93, Text: "The best of people are those who are most protective of their honor.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tabarani", Category: "Honor"},
	{ID: 94, Text: "Whoever is moderate in his lifestyle will never be in need.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tabarani", Category: "Moderation"},
	{ID: 95, Text: "The best of people are those who are most eager to do good.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tabarani", Category: "Good Deeds"},
	{ID: 96, Text: "Whoever is pleased with Allah as his Lord will find peace.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sahih Muslim", Category: "Contentment"},
	{ID: 97, Text: "The best of people are those who are most concerned about the Hereafter.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tabarani", Category: "Hereafter"},
	{ID: 98, Text: "Whoever purifies his heart will be successful.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Quran 91:9", Category: "Purification"},
	{ID: 99, Text: "The best of people are those who are most conscious of their duties to Allah.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Tabarani", Category: "Duty"},
	{ID: 100, Text: "Whoever ends his life with 'La ilaha illa Allah' will enter Paradise.", Narrator: "Prophet Muhammad (ﷺ)", Source: "Sunan Abu Dawood", Category: "Faith"},
}
