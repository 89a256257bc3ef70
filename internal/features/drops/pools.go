// Package drops delivers scheduled motivational drops: a random line from
// one of the content pools, posted to a random member in each guild's
// general channel.
package drops

// Everyday motivation.
var generalQuotes = []string{
	"LFG!!! New day, new chance to not be mid. 💥",
	"You don’t need a mood, you need a mission. Get after it. 🎯",
	"Discipline is doing it when you don’t feel like it — and you don’t feel like it a LOT. Do it anyway.",
	"You’re one decision away from a completely different life. Make the hard one.",
	"Your future self is watching you right now, judging. Make them proud.",
	"Comfort is the enemy. Get uncomfortable, get better.",
	"If you’re waiting to ‘feel ready’, you’ll wait forever. Start dirty, fix it live.",
	"You either make progress or make excuses. Same energy, different results.",
	"Losers wait for motivation. Winners show up out of habit.",
	"Your problems won’t get lighter. You need to get stronger.",
	"Every time you don’t quit, you just insult your old lazy self. Keep insulting them.",
	"You’re not behind. You’re just earlier in the storyline. Keep grinding.",
	"Tired? Good. That’s the tax you pay for improvement.",
	"When you think you’re done, you’re probably at 40%. Push past it.",
	"If it scares you and it’s good for you — that’s exactly what you should be doing.",
	"You don’t rise to the level of your goals. You fall to the level of your systems.",
	"Success is just boredom done consistently. Boring work, legendary results.",
	"You’re not fragile. You’ve survived every bad day so far. Keep going.",
	"Talk less about the grind, grind more so people talk about you.",
	"You are building a version of you that your enemies will fear. Stay at it.",
}

// Training motivation.
var fitnessQuotes = []string{
	"Get your ass under the bar today. No excuses. 💪",
	"LET’S GET THIS BREAD 🍞 and then burn it off.",
	"Stop scrolling. Start lifting. The weights are waiting.",
	"Pain is temporary, looking powerful is a long-term investment.",
	"Sweat now, flex later. The pump is your signature.",
	"No one cares how tired you are. Hit the set.",
	"You don’t need motivation; you need a scheduled workout.",
	"Your gym membership doesn’t get you results. Showing up does.",
	"Your body is voting with every rep. Vote for strength.",
	"Cardio doesn’t kill gains. Skipping cardio kills your lungs.",
	"Every rep is a receipt that you were here and you worked.",
	"You can’t out-talk a bad physique. Train.",
	"Progress pics > excuses. Take both, compare.",
	"Your warm-up is someone else’s max. Respect it and get better.",
	"You won’t remember being tired. You will remember quitting.",
	"If you still look cute at the end, you didn’t work hard enough.",
	"Leg day builds humility and domination at the same time.",
	"You don’t ‘find’ time to train. You steal it from weaker versions of yourself.",
	"Slow progress is still progress. Fast excuses are still excuses.",
	"The iron is honest. It doesn’t care who you are, only what you do.",
	"No magical program beats ‘show up 4–6 days a week’ for a year.",
	"A bad workout is better than the perfect workout you never did.",
	"The first set is negotiation. The last set is war.",
	"You’re one hard month away from being unrecognizable. Start the month.",
	"Stop saying ‘I’ll start Monday’. Today is a perfectly good day to suffer.",
	"Muscle doesn’t grow from comfort. It grows from ‘damn, that was heavy.’",
	"You’re not too old, too busy, or too tired. You’re under-trained.",
	"You’re building armor. Not just for your body, for your life.",
	"Your workout is therapy with receipts. Pay the bill.",
	"Be the strongest one in your friend group. Set the standard.",
}

// Honor and discipline themed lines.
var knightQuotes = []string{
	"A knight’s first armor is discipline; steel just covers the outside.",
	"Honor is when your actions match your code, even when nobody’s watching.",
	"The weak wait for the perfect moment; the knight sharpens his blade every day.",
	"You do not rise to the occasion; you fall to the level of your training.",
	"A code is not a slogan. It’s the rules you obey when it hurts.",
	"The enemy is rarely out there. It’s the coward inside you.",
	"A true knight keeps his word, his blade sharp, and his heart steady.",
	"Every rep is a hammer blow on the armor of your character.",
	"A man without a code is a sword without a wielder — dangerous, but pointless.",
	"The day you stop training is the day your shield starts to crack.",
	"Knighthood isn’t a title; it’s the weight of responsibility you choose to carry.",
	"A warrior doesn’t hope for an easier path; he sharpens himself for the hard one.",
	"Strength without honor is just intimidation. Honor without strength is just a wish.",
	"Your past failures are dents in your armor, not reasons to stop fighting.",
	"When the village sleeps, the knight keeps watch. When they doubt, he keeps training.",
	"You don’t swear an oath once; you renew it with every hard choice.",
	"Cowards break when it’s heavy. Knights grip tighter.",
	"The code is simple: protect, improve, endure, repeat.",
	"It’s not about winning one battle; it’s about being ready for all of them.",
	"In the gym and in life, steel is tested in fire, not in comfort.",
	"Your integrity is the sword you take into every room.",
	"A knight respects the weight, but never fears it.",
	"You can’t wear honor like a cloak; it’s carved into your bones by your choices.",
	"The smallest promise to yourself is still sacred. Keep it.",
	"You don’t have to be the strongest knight, just the one who never stops advancing.",
	"Your code is written in your habits, not your words.",
	"Any fool can lift when it’s easy. The knight lifts when it’s dark and cold.",
	"You don’t need a crown. You need a standard you refuse to drop.",
	"A real knight doesn’t seek comfort. He seeks capability.",
	"Protect your people. Perfect your craft. Guard your mind. That is the path.",
}

// Training facts.
var fitnessFacts = []string{
	"Fact: Consistent strength training 2–3 times per week can significantly increase muscle mass and bone density over time.",
	"Fact: NEAT (non-exercise activity thermogenesis) — walking, fidgeting, stairs — can burn more calories per day than your actual workout.",
	"Fact: Muscles don’t grow in the gym; they grow during rest and recovery, especially sleep.",
	"Fact: Heavy compound lifts like squats and deadlifts stimulate more muscle and hormone response than machine-only workouts.",
	"Fact: Cardio improves heart health but also helps with recovery by increasing blood flow to your muscles.",
	"Fact: You can gain strength even in a calorie deficit, especially as a beginner.",
	"Fact: DOMS (delayed onset muscle soreness) is not a perfect indicator of progress; you can grow without being wrecked every session.",
	"Fact: Progressive overload — increasing weight, reps, or difficulty over time — is the core driver of muscle growth.",
	"Fact: Flexibility and mobility work can reduce injury risk and actually improve strength performance.",
	"Fact: Working out with friends or a group massively increases adherence and enjoyment.",
	"Fact: Even 10–15 minutes of daily movement is better than zero and improves health markers.",
	"Fact: HIIT (high-intensity interval training) can improve cardiovascular fitness with shorter time commitments.",
	"Fact: Grip strength is correlated with overall health and longevity in many studies.",
	"Fact: A strong posterior chain (back, glutes, hamstrings) helps posture, athleticism, and reduces back pain.",
	"Fact: Consistent training changes not just your muscles, but your brain’s motor patterns and coordination.",
	"Fact: Walking is one of the most underrated fat-loss tools — low stress, repeatable, and sustainable.",
	"Fact: Lifting weights can improve insulin sensitivity and blood sugar control.",
	"Fact: Balance and stability training reduce the risk of falls and injuries, especially as you age.",
	"Fact: Even short “exercise snacks” (5 minutes of movement a few times a day) contribute to better health.",
	"Fact: Muscle is metabolically active tissue; more muscle generally means a higher resting metabolic rate.",
	"Fact: Training close to failure (with good form) is more important than fancy exercises for growth.",
	"Fact: Good form under lighter weight beats ugly reps with ego weight every time.",
	"Fact: Consistent training can reduce symptoms of anxiety and depression for many people.",
	"Fact: Periodizing your training (cycles of intensity/volume) can prevent plateaus and burnout.",
	"Fact: Strength training supports joint health by strengthening the muscles and tissues around them.",
	"Fact: You can maintain most of your gains with far less volume than it took to build them.",
	"Fact: Cardio and lifting together create better health outcomes than either alone for most people.",
	"Fact: Training your core is about stability and bracing, not just endless crunches.",
	"Fact: The best program is the one you can stick to consistently for months and years.",
	"Fact: It’s never “too late” to start; people build strength and muscle well into their 60s and beyond.",
}

// Brain health facts.
var brainFacts = []string{
	"Fact: Regular aerobic exercise increases blood flow to the brain and is linked to better memory and learning.",
	"Fact: Quality sleep is when your brain consolidates memories and clears metabolic waste.",
	"Fact: Chronic stress can physically shrink areas of the brain like the hippocampus if unmanaged.",
	"Fact: Strength training has been associated with better cognitive function in older adults.",
	"Fact: Learning new skills (languages, instruments, complex games) builds new neural connections.",
	"Fact: Social connection is a powerful protector against cognitive decline and depression.",
	"Fact: Omega-3 fatty acids (like DHA) are important structural components of brain cell membranes.",
	"Fact: Dehydration as little as 1–2% can negatively affect focus, mood, and reaction time.",
	"Fact: Excessive alcohol intake can damage brain cells and impair memory over time.",
	"Fact: Meditation and mindfulness practices can change brain structure (like thickening the prefrontal cortex).",
	"Fact: Regular physical exercise is one of the strongest lifestyle tools to reduce risk of dementia.",
	"Fact: The brain uses about 20% of the body’s resting energy despite being only ~2% of body weight.",
	"Fact: Good cardiovascular health is closely tied to brain health — what’s good for the heart is often good for the brain.",
	"Fact: Chronic sleep deprivation impairs decision-making, reaction time, and emotional regulation.",
	"Fact: Learning and exercising together (like complex sports) are especially powerful for brain health.",
	"Fact: Vitamin B12 deficiency can lead to memory problems and neurological symptoms.",
	"Fact: High-sugar diets over time may negatively affect cognitive function and mood.",
	"Fact: Regular reading and mentally challenging activities help build cognitive reserve.",
	"Fact: Exposure to nature and sunlight can improve mood and cognitive performance.",
	"Fact: The brain is plastic — it can change structure and function throughout life with training and habit.",
	"Fact: Resistance training can increase levels of brain-derived neurotrophic factor (BDNF), which supports neuron growth.",
	"Fact: Poor mental health can show up as physical symptoms like fatigue and pain.",
	"Fact: Good gut health may be linked to better brain health via the gut-brain axis.",
	"Fact: Music training in childhood and adulthood is linked to better auditory and cognitive skills.",
	"Fact: Multi-tasking is often just rapid task-switching; deep focus is more efficient for complex work.",
	"Fact: Chronic exposure to screens late at night can interfere with melatonin and sleep quality.",
	"Fact: Properly managed stress (e.g., through exercise and breathing) can build resilience, not just exhaustion.",
	"Fact: Regular movement breaks during long work sessions improve attention and reduce mental fatigue.",
	"Fact: Creative activities (drawing, writing, building) stimulate multiple regions of the brain at once.",
	"Fact: A combination of diet, exercise, sleep, and social connection forms the foundation of long-term brain health.",
}

// Nutrition and supplement facts.
var nutritionFacts = []string{
	"Fact: Protein is the most satiating macronutrient and is crucial for muscle repair and growth.",
	"Fact: Most lifters benefit from roughly 0.7–1.0 grams of protein per pound of bodyweight per day, depending on goals.",
	"Fact: Creatine is one of the most researched supplements and is generally safe for healthy individuals.",
	"Fact: Vitamin D deficiency is common and can affect mood, bone health, and immune function.",
	"Fact: Magnesium plays a role in hundreds of enzymatic reactions, including muscle and nerve function.",
	"Fact: Omega-3 fatty acids may support heart health, brain function, and help modulate inflammation.",
	"Fact: Carbohydrates around workouts can support performance and recovery by replenishing glycogen.",
	"Fact: Hydration affects strength, endurance, and cognitive performance — even mild dehydration hurts performance.",
	"Fact: Fiber supports gut health, blood sugar control, and satiety; most people eat too little of it.",
	"Fact: Whole foods tend to provide more micronutrients than highly processed foods with the same calories.",
	"Fact: Chronic extreme calorie restriction can slow metabolism and lead to muscle loss.",
	"Fact: A small calorie surplus plus resistance training is typically best for lean muscle gain.",
	"Fact: A moderate calorie deficit, adequate protein, and lifting is best for fat loss with muscle retention.",
	"Fact: Alcohol provides 7 calories per gram and can interfere with recovery and sleep quality.",
	"Fact: Electrolytes like sodium, potassium, and magnesium are crucial for muscle contraction and nerve signaling.",
	"Fact: Caffeine can improve performance and focus, but too much can hurt sleep and recovery.",
	"Fact: Spreading protein intake across 3–4 meals may optimize muscle protein synthesis.",
	"Fact: Vitamin C plays a key role in collagen formation, important for skin, joints, and connective tissue.",
	"Fact: Calcium and vitamin D work together for bone health and strength.",
	"Fact: Highly processed, hyper-palatable foods are engineered to override normal hunger signals.",
	"Fact: Eating enough micronutrients (vitamins and minerals) supports hormone production and energy levels.",
	"Fact: Meal timing matters less than total daily calories and macros for body composition, for most people.",
	"Fact: Creatine might also support brain function and cognitive performance in addition to strength.",
	"Fact: Consistent, balanced nutrition beats hardcore short-term diets over the long run.",
	"Fact: A high-protein breakfast can reduce cravings and snacking later in the day.",
	"Fact: Omega-3 and omega-6 fatty acid balance matters; many people consume too much omega-6.",
	"Fact: Plant-based diets can support athletic performance if protein and key nutrients are planned well.",
	"Fact: Vitamins and supplements are helpers, not substitutes for a solid diet.",
	"Fact: Eating slowly and mindfully helps your brain register fullness more accurately.",
	"Fact: Good nutrition is a performance multiplier in the gym, not just a way to change the scale.",
}

// History facts.
var reconquistaFacts = []string{
	"Fact: The Reconquista refers to the centuries-long process (roughly 8th to 15th century) in which Christian kingdoms in Iberia expanded southward over territories controlled by Muslim states.",
	"Fact: The Muslim conquest of most of the Iberian Peninsula began around 711 CE, after the Battle of Guadalete.",
	"Fact: One early Christian stronghold was the Kingdom of Asturias in the north, associated with the Battle of Covadonga (traditionally dated 722 CE).",
	"Fact: Over time, northern Christian polities like Asturias evolved into later kingdoms such as León and Castile.",
	"Fact: The Kingdom of Navarre was another important Christian realm during the medieval history of Iberia.",
	"Fact: The Crown of Aragon, centered in the northeast, played a major role in Mediterranean politics and in later stages of the Reconquista.",
	"Fact: Portugal emerged as an independent kingdom in the 12th century and completed its own territorial expansion southward by the mid-13th century.",
	"Fact: The Almoravid and Almohad dynasties were powerful North African Muslim dynasties that ruled parts of Iberia and contested Christian advances.",
	"Fact: The Battle of Las Navas de Tolosa in 1212 was a key victory for several Christian kingdoms against Almohad forces.",
	"Fact: By the late 13th century, most of Iberia north of the Emirate of Granada was under Christian rule.",
	"Fact: The Emirate of Granada remained the last major Muslim-ruled territory in Iberia into the 15th century.",
	"Fact: The marriage of Ferdinand II of Aragon and Isabella I of Castile in the late 15th century unified two major Christian crowns.",
	"Fact: The final campaign against the Emirate of Granada took place in the 1480s and early 1490s.",
	"Fact: The capture of Granada in 1492 is often taken as a symbolic end point of the Reconquista.",
	"Fact: The Alhambra in Granada is a famous palace-fortress complex built under Nasrid rule prior to the conquest.",
	"Fact: Rodrigo Díaz de Vivar, known as ‘El Cid’, is a historical figure and later legendary hero in Castilian literature, connected to frontier warfare in Iberia.",
	"Fact: The Reconquista period involved alliances and conflicts that were not always strictly along religious lines.",
	"Fact: Frontier regions often had mixed populations with complex cultural, linguistic, and legal arrangements.",
	"Fact: Military orders (such as the Order of Santiago or Calatrava) participated in campaigns during the Reconquista era.",
	"Fact: Many medieval Iberian cities show layered architectural influences from Roman, Islamic, and Christian building traditions.",
	"Fact: Legal codes like the ‘Siete Partidas’ in Castile were shaped during and after periods of expansion and consolidation.",
	"Fact: The Reconquista era intersected with broader Mediterranean politics involving North Africa, France, and Italian states.",
	"Fact: After 1492, the unified crowns of Castile and Aragon turned increasing attention to Atlantic exploration.",
	"Fact: 1492 was also the year the Alhambra Decree ordered the expulsion of many Jews from the kingdoms of Castile and Aragon.",
	"Fact: The term ‘Reconquista’ itself became more widely used and symbolically charged in later centuries.",
	"Fact: Religious, political, and cultural narratives about the Reconquista have been interpreted differently over time by various groups.",
	"Fact: Many modern Spanish towns and festivals still commemorate events or figures associated with medieval Iberian conflicts.",
	"Fact: Scholarship on the period emphasizes both warfare and long-term cultural exchange across religious and linguistic boundaries.",
	"Fact: The history of medieval Iberia is studied today for its complex interactions among Christian, Muslim, and Jewish communities.",
	"Fact: Understanding the Reconquista involves examining both military events and the everyday lives of people on all sides of the frontier.",
}

// pools gathers every content pool. A drop picks a pool, then a line.
var pools = [][]string{
	generalQuotes,
	fitnessQuotes,
	knightQuotes,
	fitnessFacts,
	brainFacts,
	nutritionFacts,
	reconquistaFacts,
}
