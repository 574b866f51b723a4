package service

import "fmt"

const detailPromptTemplate = `You are a world-class educator, skilled at breaking down complex topics into simple, memorable concepts.
Provide a clear and detailed explanation for the following topic, formatted in markdown.
Your explanation should include:
1. **Summary**: A brief, one or two-sentence summary of the topic.
2. **Key Points**: A bulleted list of the 3-5 most important concepts or facts.
3. **Example/Analogy**: A simple, real-world example or an easy-to-understand analogy.

Do not include the topic name as a header in your response; the application provides the title.

Topic to explain: %q`

func detailPrompt(topic string) string {
	return fmt.Sprintf(detailPromptTemplate, topic)
}
